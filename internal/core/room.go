package core

import (
	"sync"
	"time"
)

// Room bundles the per-room state: the roster of present participants
// and the playback clock. The mutex serializes the command processor,
// the periodic broadcaster, and deferred join catchups, all of which
// touch the same state from different goroutines.
type Room struct {
	Name string

	mu       sync.Mutex
	roster   *Roster
	playback *Playback
}

// NewRoom constructs a room with an empty roster and a stopped clock.
func NewRoom(name string) *Room {
	return &Room{
		Name:     name,
		roster:   NewRoster(),
		playback: NewPlayback(),
	}
}

// RoomSnapshot is a read-only view of a room for the operator surface.
type RoomSnapshot struct {
	Name           string `json:"name"`
	Playing        bool   `json:"playing"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
	Members        int    `json:"members"`
}

// Snapshot captures the room's state at the given instant.
func (r *Room) Snapshot(now time.Time) RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RoomSnapshot{
		Name:           r.Name,
		Playing:        r.playback.Playing(),
		ElapsedSeconds: r.playback.ElapsedSeconds(now),
		Members:        r.roster.Size(),
	}
}
