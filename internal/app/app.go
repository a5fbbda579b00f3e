package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/videosync-bot/internal/config"
	"github.com/vovakirdan/videosync-bot/internal/core"
	"github.com/vovakirdan/videosync-bot/internal/metrics"
	"github.com/vovakirdan/videosync-bot/internal/store"
	"github.com/vovakirdan/videosync-bot/internal/store/sqlite"
	transporthttp "github.com/vovakirdan/videosync-bot/internal/transport/http"
	"github.com/vovakirdan/videosync-bot/internal/transport/irc"
)

// App wires together core, transport, and persistence layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	chat            *irc.Client
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	metrics.Init()

	st, err := sqlite.New(cfg.TranscriptPath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	logger.Info().Str("db_path", cfg.TranscriptPath).Msg("transcript store initialized")

	hub := core.NewHub(core.HubOptions{
		Rooms:             cfg.RoomNames(),
		Nick:              cfg.BotNick(),
		Store:             st,
		Logger:            logger,
		BroadcastInterval: cfg.BroadcastInterval,
		JoinGrace:         cfg.JoinGrace,
	})

	chat := irc.New(cfg, hub, logger)
	hub.SetSender(chat)

	server := transporthttp.NewServer(hub, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		chat:            chat,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the broadcaster, the HTTP server, and the chat
// connection, then blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	chatErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	go func() {
		chatErr <- a.chat.Run(ctx)
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case err := <-chatErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the transcript store and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
