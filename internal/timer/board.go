package timer

import (
	"sync"

	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
)

// Board runs one driver per timer. Drivers share nothing; the board only
// tracks them so they can be replaced or stopped together.
type Board struct {
	opts DriverOptions

	mu      sync.Mutex
	drivers map[string]*Driver
}

// NewBoard creates a board whose drivers use opts. OnUpdate and OnComplete
// are shared by every driver; snapshots carry the timer ID.
func NewBoard(opts DriverOptions) *Board {
	return &Board{
		opts:    opts,
		drivers: make(map[string]*Driver),
	}
}

// Add starts a driver for t, replacing any driver already running for the
// same ID.
func (b *Board) Add(t *model.Timer) *Driver {
	d := NewDriver(t, b.opts)

	b.mu.Lock()
	old := b.drivers[t.ID]
	b.drivers[t.ID] = d
	b.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	d.Start()
	return d
}

// Remove stops and forgets the driver for id.
func (b *Board) Remove(id string) {
	b.mu.Lock()
	d := b.drivers[id]
	delete(b.drivers, id)
	b.mu.Unlock()

	if d != nil {
		d.Stop()
	}
}

// Sync makes the board match timers: new and changed records get fresh
// drivers, missing ones are stopped.
func (b *Board) Sync(timers []*model.Timer) {
	seen := make(map[string]bool, len(timers))
	for _, t := range timers {
		seen[t.ID] = true
		b.mu.Lock()
		d := b.drivers[t.ID]
		b.mu.Unlock()
		if d != nil && sameTimer(d.timer, t) {
			continue
		}
		b.Add(t)
	}

	for _, id := range b.IDs() {
		if !seen[id] {
			b.Remove(id)
		}
	}
}

// Get returns the driver for id, if any.
func (b *Board) Get(id string) (*Driver, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.drivers[id]
	return d, ok
}

// IDs returns the IDs of all tracked drivers.
func (b *Board) IDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.drivers))
	for id := range b.drivers {
		ids = append(ids, id)
	}
	return ids
}

// Running returns how many drivers have not stopped.
func (b *Board) Running() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, d := range b.drivers {
		if d.State() == StateRunning {
			n++
		}
	}
	return n
}

// StopAll stops every driver.
func (b *Board) StopAll() {
	b.mu.Lock()
	drivers := make([]*Driver, 0, len(b.drivers))
	for _, d := range b.drivers {
		drivers = append(drivers, d)
	}
	b.drivers = make(map[string]*Driver)
	b.mu.Unlock()

	for _, d := range drivers {
		d.Stop()
	}
	logging.LogOperation("board_stop", logging.KeyCount, len(drivers))
}

// sameTimer compares the fields a driver depends on. Instants are compared
// with Equal so that a reload into another location is not a change.
func sameTimer(a, b *model.Timer) bool {
	return a.ID == b.ID &&
		a.Title == b.Title &&
		a.Type == b.Type &&
		a.Date.Equal(b.Date) &&
		a.CreationDate.Equal(b.CreationDate)
}
