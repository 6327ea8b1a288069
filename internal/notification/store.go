// Package notification keeps the dashboard's transient notifications.  They
// are a local UI affordance: seeded with examples, mutated in memory and
// thrown away with the visitor's UI session.  Nothing is sent to the backend.
package notification

import (
	"sync"

	"github.com/iliyamo/car-rental-web/internal/model"
)

// Store is one visitor's notification list.  Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	items []model.Notification
}

// NewStore returns a store holding a copy of items.
func NewStore(items []model.Notification) *Store {
	cp := make([]model.Notification, len(items))
	copy(cp, items)
	return &Store{items: cp}
}

// List returns a snapshot of the notifications in display order.
func (s *Store) List() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]model.Notification, len(s.items))
	copy(cp, s.items)
	return cp
}

// UnreadCount is computed from the list on every call.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkAsRead flags one notification as read.  Unknown ids are ignored.
func (s *Store) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return
		}
	}
}

// MarkAllAsRead flags every notification as read.
func (s *Store) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Read = true
	}
}

// Clear removes one notification.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ClearAll empties the list.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}
