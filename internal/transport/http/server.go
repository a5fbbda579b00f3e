package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/videosync-bot/internal/config"
	"github.com/vovakirdan/videosync-bot/internal/core"
)

// NewServer builds the read-only operator HTTP server: health,
// per-room playback snapshots, and Prometheus metrics.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	h := NewHandlers(hub, logger)
	router.GET("/health", h.Health)
	router.GET("/api/rooms", h.Rooms)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
