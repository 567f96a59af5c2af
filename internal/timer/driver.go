package timer

import (
	"sync"
	"time"

	"github.com/manav03panchal/countdown/internal/clock"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
)

// State is the lifecycle state of a Driver.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// UpdateFunc receives every snapshot a driver emits.
type UpdateFunc func(Snapshot)

// CompleteFunc is called once when a countdown reaches its target.
type CompleteFunc func(Snapshot)

// DriverOptions configures a Driver.
type DriverOptions struct {
	Scheduler  Scheduler
	Clock      clock.Clock
	Interval   time.Duration
	OnUpdate   UpdateFunc
	OnComplete CompleteFunc
}

// Driver recomputes one timer's reading every tick and reports it. A
// countdown driver stops on its own when the target is reached; an elapsed
// driver runs until stopped.
type Driver struct {
	timer      *model.Timer
	scheduler  Scheduler
	clock      clock.Clock
	interval   time.Duration
	onUpdate   UpdateFunc
	onComplete CompleteFunc

	// tickMu serializes emissions; mu guards state and cancel.
	tickMu sync.Mutex
	mu     sync.Mutex
	state  State
	cancel func()
}

// NewDriver creates a driver for t. The timer is copied.
func NewDriver(t *model.Timer, opts DriverOptions) *Driver {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultTickInterval
	}
	return &Driver{
		timer:      t.Clone(),
		scheduler:  opts.Scheduler,
		clock:      opts.Clock,
		interval:   opts.Interval,
		onUpdate:   opts.OnUpdate,
		onComplete: opts.OnComplete,
	}
}

// Timer returns a copy of the driven timer.
func (d *Driver) Timer() *model.Timer {
	return d.timer.Clone()
}

// State returns the current state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Start emits a snapshot immediately and then one per interval. Starting a
// driver that is already running or stopped does nothing.
func (d *Driver) Start() {
	d.mu.Lock()
	if d.state != StateIdle {
		d.mu.Unlock()
		return
	}
	d.state = StateRunning
	d.mu.Unlock()

	logging.ForTimer(d.timer.ID).Debug("driver started", logging.KeyType, d.timer.Type)

	if d.tick() {
		return
	}
	if d.scheduler == nil {
		return
	}

	cancel := d.scheduler.Every(d.interval, func() { d.tick() })

	d.mu.Lock()
	if d.state == StateStopped {
		d.mu.Unlock()
		cancel()
		return
	}
	d.cancel = cancel
	d.mu.Unlock()
}

// Stop cancels the schedule. A tick already in progress finishes. Stop is
// safe to call more than once and from inside a callback.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state == StateStopped {
		d.mu.Unlock()
		return
	}
	d.state = StateStopped
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	logging.ForTimer(d.timer.ID).Debug("driver stopped")
}

// tick emits one snapshot and reports whether the driver reached its
// terminal state.
func (d *Driver) tick() bool {
	d.tickMu.Lock()
	defer d.tickMu.Unlock()

	if d.State() != StateRunning {
		return true
	}

	snap := BuildSnapshot(d.timer, d.clock.Now())
	if d.onUpdate != nil {
		d.onUpdate(snap)
	}
	if !snap.Completed {
		return false
	}

	// The update callback may have stopped the driver already; completion
	// fires only for the transition made here.
	d.mu.Lock()
	if d.state != StateRunning {
		d.mu.Unlock()
		return true
	}
	d.state = StateStopped
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	logging.ForTimer(d.timer.ID).Debug("countdown complete")
	if d.onComplete != nil {
		d.onComplete(snap)
	}
	return true
}
