package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/manav03panchal/countdown/internal/clock"
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
)

// TimerRepo is the timer collection. It keeps the collection in memory and
// persists the whole of it under model.KeyTimers on every mutation.
type TimerRepo struct {
	db    *DB
	clock clock.Clock

	mu     sync.Mutex
	timers map[string]*model.Timer
	loaded bool
}

// NewTimerRepo creates a new timer repository.
func NewTimerRepo(db *DB, clk clock.Clock) *TimerRepo {
	if clk == nil {
		clk = clock.Real{}
	}
	return &TimerRepo{db: db, clock: clk}
}

// DefaultTimers returns the example collection written to an empty store:
// a countdown to the next New Year and an elapsed timer started a day ago.
func DefaultTimers(now time.Time) map[string]*model.Timer {
	newYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
	return map[string]*model.Timer{
		"timer1": {
			ID:           "timer1",
			Title:        fmt.Sprintf("Новый Год %d", newYear.Year()),
			Type:         model.TimerTypeCountdown,
			Date:         newYear,
			CreationDate: now,
		},
		"timer2": {
			ID:           "timer2",
			Title:        "Старт проекта",
			Type:         model.TimerTypeElapsed,
			Date:         now.Add(-24 * time.Hour),
			CreationDate: now,
		},
	}
}

// Load reads the collection from the store. An absent collection is replaced
// by DefaultTimers and persisted. Legacy records are migrated and, if any
// changed, the collection is written back.
func (r *TimerRepo) Load() (map[string]*model.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(); err != nil {
		return nil, err
	}
	return cloneTimers(r.timers), nil
}

func (r *TimerRepo) loadLocked() error {
	exists, err := r.db.Exists(model.KeyTimers)
	if err != nil {
		return errors.NewSystemErrorWithOp("load timers", "failed to read timers", err)
	}
	if !exists {
		timers := DefaultTimers(r.clock.Now())
		if err := r.persist(timers); err != nil {
			return err
		}
		r.timers = timers
		r.loaded = true
		logging.Info("seeded example timers", logging.KeyCount, len(timers))
		return nil
	}

	var timers map[string]*model.Timer
	if err := r.db.GetJSON(model.KeyTimers, &timers); err != nil {
		return errors.NewSystemErrorWithOp("load timers", "failed to read timers", err)
	}
	if timers == nil {
		timers = make(map[string]*model.Timer)
	}

	migrated := 0
	for id, t := range timers {
		if t == nil {
			delete(timers, id)
			continue
		}
		if t.ID == "" {
			t.ID = id
		}
		if t.Migrate() {
			migrated++
		}
	}

	if migrated > 0 {
		if err := r.persist(timers); err != nil {
			return err
		}
		logging.Info("migrated legacy timers", logging.KeyCount, migrated)
	}

	r.timers = timers
	r.loaded = true
	logging.LogOperation("load_timers", logging.KeyCount, len(timers))
	return nil
}

// Refresh drops the in-memory collection and reads it again from the store,
// picking up writes made by other processes.
func (r *TimerRepo) Refresh() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaded = false
	return r.loadLocked()
}

func (r *TimerRepo) ensureLoaded() error {
	if r.loaded {
		return nil
	}
	return r.loadLocked()
}

// Save replaces the whole collection. Nil entries are dropped.
func (r *TimerRepo) Save(timers map[string]*model.Timer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneTimers(timers)
	if err := r.persist(next); err != nil {
		return err
	}
	r.timers = next
	r.loaded = true
	return nil
}

// Upsert validates and stores a timer. A timer whose ID already exists is
// overwritten but keeps its original CreationDate; a timer without an ID gets
// a fresh one and CreationDate set to now. Invalid input leaves the
// collection untouched.
func (r *TimerRepo) Upsert(t *model.Timer) (*model.Timer, error) {
	rec := t.Clone()
	rec.Title = strings.TrimSpace(rec.Title)
	rec.ID = strings.TrimSpace(rec.ID)
	rec.CreatedAt = time.Time{}

	if rec.Title == "" {
		return nil, errors.NewValidationError("title", "", errors.ErrTitleRequired)
	}
	if rec.Date.IsZero() {
		return nil, errors.NewValidationError("date", "", errors.ErrDateRequired)
	}
	if rec.Type == "" {
		rec.Type = model.TimerTypeCountdown
	}
	if !rec.Type.IsValid() {
		return nil, errors.NewValidationError("type", string(rec.Type), errors.ErrInvalidTimerType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if rec.ID == "" {
		rec.ID = r.mintID(now)
		rec.CreationDate = now
	} else if existing, ok := r.timers[rec.ID]; ok && !existing.CreationDate.IsZero() {
		rec.CreationDate = existing.CreationDate
	} else {
		rec.CreationDate = now
	}

	next := cloneTimers(r.timers)
	next[rec.ID] = rec
	if err := r.persist(next); err != nil {
		return nil, err
	}
	r.timers = next

	logging.ForTimer(rec.ID).Debug("timer saved", logging.KeyType, rec.Type)
	return rec.Clone(), nil
}

// mintID derives an unused ID from now, stepping a millisecond on collision.
func (r *TimerRepo) mintID(now time.Time) string {
	id := model.GenerateTimerID(now)
	for {
		if _, taken := r.timers[id]; !taken {
			return id
		}
		now = now.Add(time.Millisecond)
		id = model.GenerateTimerID(now)
	}
}

// Remove deletes a timer. Removing an unknown ID is a no-op.
func (r *TimerRepo) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := r.timers[id]; !ok {
		return nil
	}

	next := cloneTimers(r.timers)
	delete(next, id)
	if err := r.persist(next); err != nil {
		return err
	}
	r.timers = next

	logging.ForTimer(id).Debug("timer removed")
	return nil
}

// Get returns a copy of one timer.
func (r *TimerRepo) Get(id string) (*model.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	t, ok := r.timers[id]
	if !ok {
		return nil, errors.NewValidationError("id", id, errors.ErrTimerNotFound)
	}
	return t.Clone(), nil
}

// List returns copies of all timers ordered by creation instant, then ID.
func (r *TimerRepo) List() ([]*model.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	list := make([]*model.Timer, 0, len(r.timers))
	for _, t := range r.timers {
		list = append(list, t.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreationDate.Equal(list[j].CreationDate) {
			return list[i].CreationDate.Before(list[j].CreationDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *TimerRepo) persist(timers map[string]*model.Timer) error {
	if err := r.db.SetJSON(model.KeyTimers, timers); err != nil {
		return errors.NewSystemErrorWithOp("save timers", "failed to write timers", err)
	}
	return nil
}

func cloneTimers(timers map[string]*model.Timer) map[string]*model.Timer {
	out := make(map[string]*model.Timer, len(timers))
	for id, t := range timers {
		if t == nil {
			continue
		}
		out[id] = t.Clone()
	}
	return out
}
