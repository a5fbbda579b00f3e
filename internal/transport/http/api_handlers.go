package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/videosync-bot/internal/core"
)

// Handlers provides HTTP handlers for the operator endpoints.
type Handlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(hub *core.Hub, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		hub: hub,
		log: logger,
	}
}

// RoomsResponse lists the playback snapshot of every room.
type RoomsResponse struct {
	Rooms []core.RoomSnapshot `json:"rooms"`
}

// Health reports liveness.
// GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Rooms returns the current playback snapshot of every room.
// GET /api/rooms
func (h *Handlers) Rooms(c *gin.Context) {
	c.JSON(http.StatusOK, RoomsResponse{Rooms: h.hub.Snapshots()})
}
