// Package queue defines the session event payload exchanged over RabbitMQ
// and the background consumer that records it.
package queue

import (
	"fmt"
	"time"
)

// SessionEventsQueue is the durable queue session events are published to.
const SessionEventsQueue = "session.events"

// Session event types.
const (
	EventLogin   = "login"
	EventLogout  = "logout"
	EventExpired = "expired"
	EventInvalid = "invalid"
)

// SessionEvent is published whenever a visitor enters or leaves the
// authenticated state.  Username and Role are empty for credentials that
// could not be decoded.
type SessionEvent struct {
	Type       string    `json:"type"`
	Username   string    `json:"username,omitempty"`
	Role       string    `json:"role,omitempty"`
	RemoteIP   string    `json:"remote_ip,omitempty"`
	Path       string    `json:"path,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LogLine renders the event as one line of logs/session.log.
func (e SessionEvent) LogLine() string {
	user := e.Username
	if user == "" {
		user = "-"
	}
	role := e.Role
	if role == "" {
		role = "-"
	}
	return fmt.Sprintf("[%s] session %s | user=%s | role=%s | ip=%s | path=%q\n",
		e.OccurredAt.UTC().Format(time.RFC3339), e.Type, user, role, e.RemoteIP, e.Path)
}
