package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vovakirdan/videosync-bot/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS transcript (
	id         TEXT PRIMARY KEY,
	room       TEXT NOT NULL,
	nick       TEXT NOT NULL,
	body       TEXT NOT NULL,
	direction  TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcript_room_created
	ON transcript (room, created_at);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the transcript database at dbPath and applies
// the schema.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendLine persists one transcript line, assigning an ID if empty.
func (s *SQLiteStore) AppendLine(ctx context.Context, line store.Line) error {
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	query := `
		INSERT INTO transcript (id, room, nick, body, direction, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query,
		line.ID, line.Room, line.Nick, line.Body, line.Direction, line.CreatedAt,
	); err != nil {
		return fmt.Errorf("append line: %w", err)
	}
	return nil
}

// RecentLines returns up to limit lines for a room, newest first.
func (s *SQLiteStore) RecentLines(ctx context.Context, room string, limit int) ([]store.Line, error) {
	query := `
		SELECT id, room, nick, body, direction, created_at
		FROM transcript
		WHERE room = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, room, limit)
	if err != nil {
		return nil, fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()

	var lines []store.Line
	for rows.Next() {
		var line store.Line
		if err := rows.Scan(&line.ID, &line.Room, &line.Nick, &line.Body, &line.Direction, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lines: %w", err)
	}
	return lines, nil
}
