package store

import (
	"context"
	"time"
)

// Line directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Line is one persisted transcript entry: a chat message the bot saw
// or a broadcast it sent.
type Line struct {
	ID        string
	Room      string
	Nick      string
	Body      string
	Direction string
	CreatedAt time.Time
}

// Store persists the chat transcript. It is a boundary collaborator:
// the core appends fire-and-forget and never reads its own state back
// from here.
type Store interface {
	// AppendLine persists one transcript line. An empty ID is
	// assigned by the implementation.
	AppendLine(ctx context.Context, line Line) error

	// RecentLines returns up to limit lines for a room, newest first.
	RecentLines(ctx context.Context, room string, limit int) ([]Line, error)

	// Close releases underlying resources.
	Close() error
}
