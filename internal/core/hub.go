package core

import (
	"context"
	"sort"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/videosync-bot/internal/metrics"
	"github.com/vovakirdan/videosync-bot/internal/store"
)

// Sender is the outbound half of the transport boundary. Sends are
// fire-and-forget; no delivery acknowledgment is awaited.
type Sender interface {
	SendGroupMessage(room, text string)
}

const (
	// DefaultBroadcastInterval is how often the periodic catchup
	// broadcast visits every room.
	DefaultBroadcastInterval = 10 * time.Second
	// DefaultJoinGrace is how long a join catchup is deferred so the
	// joining client's connection can settle first.
	DefaultJoinGrace = 1 * time.Second
)

// HubOptions configures a Hub. Zero values fall back to defaults;
// Sender may be left nil and attached later via SetSender.
type HubOptions struct {
	Rooms             []string
	Nick              string
	Sender            Sender
	Store             store.Store
	Clock             clock.Clock
	Logger            *zerolog.Logger
	BroadcastInterval time.Duration
	JoinGrace         time.Duration
}

// Hub owns every Room and is the sole entry point the transport
// adapter calls into. The room set is fixed at construction; rooms are
// never added or removed during the process lifetime.
type Hub struct {
	rooms             map[string]*Room
	nick              string
	sender            Sender
	store             store.Store
	clock             clock.Clock
	log               zerolog.Logger
	broadcastInterval time.Duration
	joinGrace         time.Duration
}

// NewHub constructs a hub with one room per name in opts.Rooms.
func NewHub(opts HubOptions) *Hub {
	h := &Hub{
		rooms:             make(map[string]*Room, len(opts.Rooms)),
		nick:              opts.Nick,
		sender:            opts.Sender,
		store:             opts.Store,
		clock:             opts.Clock,
		log:               zerolog.Nop(),
		broadcastInterval: opts.BroadcastInterval,
		joinGrace:         opts.JoinGrace,
	}
	if h.clock == nil {
		h.clock = clock.New()
	}
	if opts.Logger != nil {
		h.log = *opts.Logger
	}
	if h.broadcastInterval <= 0 {
		h.broadcastInterval = DefaultBroadcastInterval
	}
	if h.joinGrace <= 0 {
		h.joinGrace = DefaultJoinGrace
	}
	for _, name := range opts.Rooms {
		h.rooms[name] = NewRoom(name)
	}
	return h
}

// SetSender attaches the outbound transport. Must be called before
// Run and before the transport starts delivering events.
func (h *Hub) SetSender(s Sender) {
	h.sender = s
}

// Rooms returns the configured room names.
func (h *Hub) Rooms() []string {
	names := make([]string, 0, len(h.rooms))
	for name := range h.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes one transport event to the matching handler.
func (h *Hub) Dispatch(ev Event) {
	switch ev.Kind {
	case EventJoin:
		h.OnMembershipEvent(ev.Room, ev.Nick, true, ev.Role)
	case EventLeave:
		h.OnMembershipEvent(ev.Room, ev.Nick, false, RoleParticipant)
	case EventSubject:
		h.OnRoomSubject(ev.Room, ev.Text)
	case EventMessage:
		h.OnChatMessage(ev.Room, ev.Nick, ev.Text)
	}
}

// OnMembershipEvent records a join or leave in the room's roster.
// A join into a room with an active clock schedules a single deferred
// catchup so the newcomer can synchronize; the catchup reads the clock
// when it fires, not when it is scheduled, and is never cancelled even
// if the participant leaves in the interim.
func (h *Hub) OnMembershipEvent(room, nick string, available bool, role Role) {
	defer h.recoverPanic("membership")

	if nick == h.nick {
		return
	}
	rm, ok := h.rooms[room]
	if !ok {
		h.log.Debug().Str("room", room).Msg("membership event for unknown room")
		return
	}

	rm.mu.Lock()
	if !available {
		rm.roster.OnLeave(nick)
		rm.mu.Unlock()
		h.log.Debug().Str("room", room).Str("nick", nick).Msg("left")
		return
	}
	isNew := rm.roster.OnJoin(nick, role)
	active := rm.playback.Active()
	rm.mu.Unlock()

	h.log.Debug().Str("room", room).Str("nick", nick).Bool("new", isNew).Msg("joined")
	if isNew && active {
		h.clock.AfterFunc(h.joinGrace, func() {
			defer h.recoverPanic("join catchup")
			h.broadcastRoom(rm)
		})
	}
}

// OnRoomSubject is informational only; the core takes no action.
func (h *Hub) OnRoomSubject(room, text string) {
	h.log.Debug().Str("room", room).Str("subject", text).Msg("room subject")
}

// OnChatMessage authorizes and applies one chat message. Messages
// from the bot itself, from non-moderators, and text outside the
// command grammar are all dropped silently; unauthorized senders get
// no feedback at all.
func (h *Hub) OnChatMessage(room, nick, body string) {
	defer h.recoverPanic("message")

	if nick == h.nick {
		return
	}
	rm, ok := h.rooms[room]
	if !ok {
		h.log.Debug().Str("room", room).Msg("message for unknown room")
		return
	}
	h.record(store.DirectionIn, room, nick, body)

	rm.mu.Lock()
	role, _ := rm.roster.RoleOf(nick)
	if role != RoleModerator {
		rm.mu.Unlock()
		metrics.CommandDropped("unauthorized")
		return
	}
	cmd, ok := ParseCommand(body)
	if !ok {
		rm.mu.Unlock()
		metrics.CommandDropped("unrecognized")
		return
	}

	now := h.clock.Now()
	var reply string
	switch cmd.Kind {
	case CommandStart:
		rm.playback.Start(now)
	case CommandStop:
		rm.playback.Stop(now)
	case CommandSetTime:
		rm.playback.SetTime(cmd.Seconds, cmd.StartAfter, now)
	case CommandDone:
		rm.playback.Reset()
	case CommandStatus:
		reply = CatchupText(rm.playback.ElapsedSeconds(now), rm.playback.Playing())
	}
	rm.mu.Unlock()

	metrics.CommandApplied(commandName(cmd.Kind))
	h.log.Info().Str("room", room).Str("nick", nick).Str("command", commandName(cmd.Kind)).Msg("command applied")
	if reply != "" {
		h.send(room, reply)
	}
}

// Run drives the periodic catchup broadcast until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	ticker := h.clock.Ticker(h.broadcastInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.broadcastAll()
		}
	}
}

// Snapshots returns a stable-ordered view of every room.
func (h *Hub) Snapshots() []RoomSnapshot {
	now := h.clock.Now()
	snaps := make([]RoomSnapshot, 0, len(h.rooms))
	for _, rm := range h.rooms {
		snaps = append(snaps, rm.Snapshot(now))
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Name < snaps[j].Name })
	return snaps
}

// broadcastAll visits every room and emits a catchup for each one with
// an active clock. Rooms stopped at zero have nothing to synchronize.
func (h *Hub) broadcastAll() {
	defer h.recoverPanic("broadcast")

	playing := 0
	for _, rm := range h.rooms {
		if h.broadcastRoom(rm) {
			playing++
		}
	}
	metrics.SetRoomsPlaying(playing)
}

// broadcastRoom emits one catchup for the room if its clock is
// active. Returns whether the room is currently playing.
func (h *Hub) broadcastRoom(rm *Room) bool {
	rm.mu.Lock()
	if !rm.playback.Active() {
		rm.mu.Unlock()
		return false
	}
	now := h.clock.Now()
	text := CatchupText(rm.playback.ElapsedSeconds(now), rm.playback.Playing())
	playing := rm.playback.Playing()
	rm.mu.Unlock()

	h.send(rm.Name, text)
	metrics.CatchupSent()
	return playing
}

func (h *Hub) send(room, text string) {
	if h.sender == nil {
		return
	}
	h.sender.SendGroupMessage(room, text)
	h.record(store.DirectionOut, room, h.nick, text)
	h.log.Debug().Str("room", room).Str("text", text).Msg("sent")
}

// record appends a transcript line. Persistence is best-effort; a
// store failure never affects playback state.
func (h *Hub) record(direction, room, nick, body string) {
	if h.store == nil {
		return
	}
	line := store.Line{
		Room:      room,
		Nick:      nick,
		Body:      body,
		Direction: direction,
		CreatedAt: h.clock.Now(),
	}
	if err := h.store.AppendLine(context.Background(), line); err != nil {
		h.log.Warn().Err(err).Str("room", room).Msg("transcript append failed")
	}
}

func (h *Hub) recoverPanic(where string) {
	if r := recover(); r != nil {
		h.log.Error().Interface("panic", r).Str("where", where).Msg("recovered from fault during event processing")
	}
}

func commandName(kind CommandKind) string {
	switch kind {
	case CommandStart:
		return "start"
	case CommandStop:
		return "stop"
	case CommandStatus:
		return "status"
	case CommandSetTime:
		return "time"
	case CommandDone:
		return "done"
	}
	return "unknown"
}
