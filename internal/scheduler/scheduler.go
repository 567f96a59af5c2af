// Package scheduler provides cron-based recurring tasks for timer drivers.
package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/countdown/internal/logging"
)

// Scheduler runs recurring tasks on a shared cron instance. Jobs that are
// still running when their next activation comes round are skipped.
type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	started bool
	stopped bool
}

// NewScheduler creates a new scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
}

// Start starts the cron loop. Calling it again has no effect.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	s.cron.Start()
	logging.DebugLog("scheduler started")
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	s.mu.Unlock()

	pending := s.Len()
	if started {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	logging.DebugLog("scheduler stopped", logging.KeyCount, pending)
}

// Every runs fn every period, rounded to whole seconds with a one second
// minimum. The first run happens one period from now. The scheduler is
// started on first use.
func (s *Scheduler) Every(period time.Duration, fn func()) func() {
	id := s.cron.Schedule(cron.Every(period), cron.FuncJob(fn))
	s.Start()

	var once sync.Once
	return func() {
		once.Do(func() { s.cron.Remove(id) })
	}
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}
