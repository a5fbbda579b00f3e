package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vovakirdan/videosync-bot/internal/app"
	"github.com/vovakirdan/videosync-bot/internal/config"
	"github.com/vovakirdan/videosync-bot/internal/log"
)

func main() {
	var (
		configPath string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	bootLogger := log.New("info", "")
	cfg, path, err := config.Load(bootLogger, configPath)
	if err != nil {
		bootLogger.Fatal().Err(err).Str("path", path).Msg("failed to load config")
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := log.New(cfg.LogLevel, cfg.LogFile)
	logger.Info().
		Str("username", cfg.Username).
		Str("nick", cfg.BotNick()).
		Str("rooms", strings.Join(cfg.RoomNames(), ",")).
		Msg("started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build application")
	}

	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("bot exited with error")
	}
	logger.Info().Msg("bot stopped")
}
