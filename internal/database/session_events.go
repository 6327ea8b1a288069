package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iliyamo/car-rental-web/internal/queue"
)

const sessionEventsSchema = `CREATE TABLE IF NOT EXISTS session_events (
  id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  type        VARCHAR(16)  NOT NULL,
  username    VARCHAR(150) NULL,
  role        VARCHAR(32)  NULL,
  remote_ip   VARCHAR(64)  NULL,
  path        VARCHAR(255) NULL,
  occurred_at DATETIME(3)  NOT NULL,
  KEY idx_session_events_user (username, occurred_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// SessionEventStore records consumed session events in MySQL.  It satisfies
// queue.Sink.
type SessionEventStore struct {
	DB *sql.DB
}

// NewSessionEventStore creates the session_events table when missing.
func NewSessionEventStore(ctx context.Context, db *sql.DB) (*SessionEventStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, sessionEventsSchema); err != nil {
		return nil, fmt.Errorf("create session_events: %w", err)
	}
	return &SessionEventStore{DB: db}, nil
}

// Record inserts one event.
func (s *SessionEventStore) Record(ctx context.Context, ev queue.SessionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO session_events (type, username, role, remote_ip, path, occurred_at) VALUES (?, ?, ?, ?, ?, ?)`,
		ev.Type, nullable(ev.Username), nullable(ev.Role), nullable(ev.RemoteIP), nullable(ev.Path), ev.OccurredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
