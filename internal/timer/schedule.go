package timer

import "time"

// Scheduler runs fn every period until the returned cancel function is
// called. Cancel must be safe to call more than once and from within fn.
type Scheduler interface {
	Every(period time.Duration, fn func()) (cancel func())
}

// DefaultTickInterval is the period between readings.
const DefaultTickInterval = time.Second
