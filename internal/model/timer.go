package model

import (
	"fmt"
	"strings"
	"time"
)

// TimerType selects how a timer measures time against its target.
type TimerType string

const (
	TimerTypeCountdown TimerType = "countdown"
	TimerTypeElapsed   TimerType = "elapsed"
)

// IDPrefix is prepended to generated timer IDs.
const IDPrefix = "timer"

// ParseTimerType parses a timer type from user input.
func ParseTimerType(s string) (TimerType, error) {
	switch TimerType(strings.ToLower(strings.TrimSpace(s))) {
	case TimerTypeCountdown:
		return TimerTypeCountdown, nil
	case TimerTypeElapsed:
		return TimerTypeElapsed, nil
	default:
		return "", fmt.Errorf("unknown timer type %q", s)
	}
}

// IsValid reports whether t is a known timer type.
func (t TimerType) IsValid() bool {
	return t == TimerTypeCountdown || t == TimerTypeElapsed
}

// Label returns the display label shown on a timer card.
func (t TimerType) Label() string {
	if t == TimerTypeElapsed {
		return "Прошедшее время"
	}
	return "Обратный отсчет"
}

// Timer is a persisted countdown or elapsed-time widget.
type Timer struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Type         TimerType `json:"type" yaml:"type"`
	Date         time.Time `json:"date" yaml:"date"`
	CreationDate time.Time `json:"creationDate,omitzero" yaml:"creationDate,omitempty"`

	// CreatedAt is the pre-migration name of CreationDate.
	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"-"`
}

// GenerateTimerID builds a timer ID from an instant.
func GenerateTimerID(t time.Time) string {
	return fmt.Sprintf("%s%d", IDPrefix, t.UnixMilli())
}

// NewTimer creates a timer with the given fields. ID and CreationDate are
// assigned when the timer is first stored.
func NewTimer(title string, timerType TimerType, date time.Time) *Timer {
	return &Timer{
		Title: title,
		Type:  timerType,
		Date:  date,
	}
}

// Migrate renames the legacy createdAt field to creationDate.
// Returns true if the record changed.
func (t *Timer) Migrate() bool {
	if t.CreatedAt.IsZero() {
		return false
	}
	if t.CreationDate.IsZero() {
		t.CreationDate = t.CreatedAt
	}
	t.CreatedAt = time.Time{}
	return true
}

// IsCountdown returns true for countdown timers.
func (t *Timer) IsCountdown() bool {
	return t.Type != TimerTypeElapsed
}

// Clone returns a copy of the timer.
func (t *Timer) Clone() *Timer {
	c := *t
	return &c
}
