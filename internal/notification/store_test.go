package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-web/internal/model"
)

func fixture() []model.Notification {
	return []model.Notification{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B", Read: true},
		{ID: "c", Title: "C"},
	}
}

func countUnread(items []model.Notification) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}

func TestUnreadCountTracksList(t *testing.T) {
	s := NewStore(fixture())
	assert.Equal(t, 2, s.UnreadCount())

	s.MarkAsRead("a")
	assert.Equal(t, 1, s.UnreadCount())
	assert.Equal(t, countUnread(s.List()), s.UnreadCount())

	s.Clear("c")
	assert.Equal(t, 0, s.UnreadCount())
	assert.Len(t, s.List(), 2)
}

func TestMarkAllAsRead(t *testing.T) {
	s := NewStore(fixture())
	s.MarkAllAsRead()
	assert.Equal(t, 0, s.UnreadCount())
	for _, it := range s.List() {
		assert.True(t, it.Read)
	}
}

func TestClearAndClearAll(t *testing.T) {
	s := NewStore(fixture())
	s.Clear("missing")
	assert.Len(t, s.List(), 3)

	s.Clear("b")
	ids := []string{}
	for _, it := range s.List() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	s.ClearAll()
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.UnreadCount())
}

func TestListIsASnapshot(t *testing.T) {
	src := fixture()
	s := NewStore(src)
	list := s.List()
	list[0].Read = true
	src[2].Read = true
	assert.Equal(t, 2, s.UnreadCount())
}

func TestRegistrySeedsPerVisitor(t *testing.T) {
	r := NewRegistry(fixture)
	one := r.For("sid-1")
	one.MarkAllAsRead()

	two := r.For("sid-2")
	assert.Equal(t, 2, two.UnreadCount())
	assert.Same(t, one, r.For("sid-1"))

	r.Drop("sid-1")
	assert.Equal(t, 2, r.For("sid-1").UnreadCount())
}

func TestRegistrySweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(fixture)
	r.now = func() time.Time { return now }
	r.For("old")
	now = now.Add(time.Hour)
	r.For("fresh")

	require.Equal(t, 1, r.Sweep(30*time.Minute))
	assert.Equal(t, 1, r.Len())
}

func TestExamplesCoverSeverities(t *testing.T) {
	seen := map[model.Severity]bool{}
	for _, n := range Examples() {
		assert.NotEmpty(t, n.ID)
		seen[n.Severity] = true
	}
	assert.Len(t, seen, 4)
}
