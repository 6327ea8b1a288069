package notification

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/car-rental-web/internal/model"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry maps UI-session ids to notification stores.  A store is created
// and seeded the first time a visitor is seen and lives until Drop or until
// it has been idle for longer than the sweep threshold.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*entry
	seed   func() []model.Notification
	now    func() time.Time
}

// NewRegistry returns a registry seeding new stores with seed (nil means
// the built-in examples).
func NewRegistry(seed func() []model.Notification) *Registry {
	if seed == nil {
		seed = Examples
	}
	return &Registry{stores: map[string]*entry{}, seed: seed, now: time.Now}
}

// For returns the store for sid, creating and seeding it when needed.
func (r *Registry) For(sid string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.stores[sid]
	if !ok {
		e = &entry{store: NewStore(r.seed())}
		r.stores[sid] = e
	}
	e.lastSeen = r.now()
	return e.store
}

// Drop discards sid's notifications (logout).
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sid)
}

// Len reports how many visitors currently hold a store.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Sweep removes stores idle for longer than idle and returns how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-idle)
	n := 0
	for sid, e := range r.stores {
		if e.lastSeen.Before(cutoff) {
			delete(r.stores, sid)
			n++
		}
	}
	return n
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(idle); n > 0 {
				log.Printf("notification-sweeper: dropped %d idle stores", n)
			}
		}
	}
}

// Examples is the static seed shown to every new visitor.
func Examples() []model.Notification {
	return []model.Notification{
		{ID: uuid.NewString(), Title: "Pemesanan dikonfirmasi", Description: "Pemesanan Toyota Avanza untuk 3 hari telah dikonfirmasi.", TimeLabel: "5 menit lalu", Severity: model.SeveritySuccess},
		{ID: uuid.NewString(), Title: "Promo baru", Description: "Gunakan kode HEMAT20 untuk diskon 20% akhir pekan ini.", TimeLabel: "1 jam lalu", Severity: model.SeverityInfo},
		{ID: uuid.NewString(), Title: "Pembayaran tertunda", Description: "Selesaikan pembayaran sebelum batas waktu agar pesanan tidak dibatalkan.", TimeLabel: "3 jam lalu", Severity: model.SeverityWarning},
		{ID: uuid.NewString(), Title: "Dokumen ditolak", Description: "Foto SIM yang diunggah tidak terbaca. Silakan unggah ulang.", TimeLabel: "1 hari lalu", Severity: model.SeverityError, Read: true},
	}
}
