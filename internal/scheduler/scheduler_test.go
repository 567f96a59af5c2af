package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduler(t *testing.T) {
	s := NewScheduler()
	assert.NotNil(t, s)
	assert.NotNil(t, s.cron)
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler()
	s.Start()
	s.Start()

	time.Sleep(100 * time.Millisecond)
	s.Stop()
	s.Stop()
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler()
	s.Stop()
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var runs atomic.Int32
	cancel := s.Every(time.Second, func() { runs.Add(1) })
	assert.Equal(t, 1, s.Len())

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	cancel()
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	settled := runs.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, settled, runs.Load())
}

func TestSchedulerCancelFromJob(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var runs atomic.Int32
	cancelCh := make(chan func(), 1)
	done := make(chan struct{})
	cancel := s.Every(time.Second, func() {
		if runs.Add(1) == 1 {
			(<-cancelCh)()
			close(done)
		}
	})
	cancelCh <- cancel

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("job never ran")
	}
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}
