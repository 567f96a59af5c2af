// Package timer computes countdown and elapsed-time readings and drives them
// on a recurring tick.
package timer

import (
	"time"

	"github.com/manav03panchal/countdown/internal/model"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Delta is a time difference split into whole units.
type Delta struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// TotalSeconds returns the delta as a single number of seconds.
func (d Delta) TotalSeconds() int64 {
	return d.Days*86400 + d.Hours*3600 + d.Minutes*60 + d.Seconds
}

// IsZero reports whether every component is zero.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Diff returns the signed millisecond difference the mode measures: time left
// for a countdown, time passed for an elapsed timer. It is not clamped.
func Diff(target, now time.Time, mode model.TimerType) int64 {
	if mode == model.TimerTypeElapsed {
		return now.Sub(target).Milliseconds()
	}
	return target.Sub(now).Milliseconds()
}

// Compute splits the difference between target and now into days, hours,
// minutes and seconds. Countdowns past their target read as zero. Elapsed
// timers with a future target are not clamped and yield negative components.
func Compute(target, now time.Time, mode model.TimerType) Delta {
	diff := Diff(target, now, mode)
	if mode != model.TimerTypeElapsed && diff < 0 {
		diff = 0
	}
	return Decompose(diff)
}

// Decompose splits a millisecond difference into whole units. Each unit is
// floored and takes the remainder of the next larger one, so negative input
// produces negative components.
func Decompose(ms int64) Delta {
	return Delta{
		Days:    floorDiv(ms, msPerDay),
		Hours:   floorDiv(ms%msPerDay, msPerHour),
		Minutes: floorDiv(ms%msPerHour, msPerMinute),
		Seconds: floorDiv(ms%msPerMinute, msPerSecond),
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
