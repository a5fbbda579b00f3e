// Package irc adapts the chat protocol connection to the core's event
// boundary. The core never sees the library; it only receives typed
// events and calls back through the Sender interface.
package irc

import (
	"context"
	"time"

	twitch "github.com/gempir/go-twitch-irc/v4"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/videosync-bot/internal/config"
	"github.com/vovakirdan/videosync-bot/internal/core"
)

const reconnectDelay = 5 * time.Second

// Client is the live chat connection. It joins every configured room
// at startup and translates protocol traffic into core events.
type Client struct {
	client *twitch.Client
	hub    *core.Hub
	rooms  []string
	log    zerolog.Logger
}

// New builds the chat client and registers all event handlers.
// Join requests are queued immediately; the protocol never replays
// room history to a joining client, so the bot starts from a clean
// slate on every connect.
func New(cfg config.Config, hub *core.Hub, logger *zerolog.Logger) *Client {
	cl := twitch.NewClient(cfg.Username, cfg.OAuthToken)
	cl.Capabilities = []string{twitch.TagsCapability, twitch.CommandsCapability, twitch.MembershipCapability}

	c := &Client{
		client: cl,
		hub:    hub,
		rooms:  cfg.RoomNames(),
		log:    *logger,
	}

	cl.OnConnect(func() {
		c.log.Info().Str("username", cfg.Username).Msg("connected to chat")
	})
	cl.OnPrivateMessage(func(msg twitch.PrivateMessage) {
		// Message tags carry the sender's current badges, so refresh
		// the roster before the message is authorized against it.
		hub.OnMembershipEvent(msg.Channel, msg.User.Name, true, roleFromBadges(msg.User.Badges))
		hub.OnChatMessage(msg.Channel, msg.User.Name, msg.Message)
	})
	cl.OnUserJoinMessage(func(msg twitch.UserJoinMessage) {
		hub.OnMembershipEvent(msg.Channel, msg.User, true, core.RoleParticipant)
	})
	cl.OnUserPartMessage(func(msg twitch.UserPartMessage) {
		hub.OnMembershipEvent(msg.Channel, msg.User, false, core.RoleParticipant)
	})
	cl.OnNoticeMessage(func(msg twitch.NoticeMessage) {
		hub.OnRoomSubject(msg.Channel, msg.Message)
	})

	for _, room := range c.rooms {
		cl.Join(room)
		c.log.Info().Str("room", room).Msg("sent request to join room")
	}

	return c
}

// SendGroupMessage implements core.Sender. Fire-and-forget.
func (c *Client) SendGroupMessage(room, text string) {
	c.client.Say(room, text)
}

// Run maintains the chat connection until ctx is cancelled.
// Connection failures are never fatal: the core's state is rebuilt
// from live events, so we just log and reconnect.
func (c *Client) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := c.client.Disconnect(); err != nil {
			c.log.Debug().Err(err).Msg("disconnect")
		}
	}()

	for {
		err := c.client.Connect()
		if ctx.Err() != nil {
			return nil
		}
		c.log.Error().Err(err).Msg("chat connection lost, reconnecting")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func roleFromBadges(badges map[string]int) core.Role {
	if badges["moderator"] > 0 || badges["broadcaster"] > 0 {
		return core.RoleModerator
	}
	return core.RoleParticipant
}
