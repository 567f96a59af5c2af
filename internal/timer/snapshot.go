package timer

import (
	"fmt"
	"time"

	"github.com/manav03panchal/countdown/internal/model"
)

// Unit is one component of a reading, ready for display.
type Unit struct {
	Value  int64  `json:"value"`
	Padded string `json:"padded"`
	Label  string `json:"label"`
}

func newUnit(v int64, forms Forms) Unit {
	return Unit{
		Value:  v,
		Padded: fmt.Sprintf("%02d", v),
		Label:  Pluralize(v, forms),
	}
}

// Snapshot is a timer's reading at one instant.
type Snapshot struct {
	TimerID string          `json:"id"`
	Title   string          `json:"title"`
	Type    model.TimerType `json:"type"`
	Target  time.Time       `json:"date"`
	At      time.Time       `json:"at"`

	Days    Unit `json:"days"`
	Hours   Unit `json:"hours"`
	Minutes Unit `json:"minutes"`
	Seconds Unit `json:"seconds"`

	// Progress is set for countdowns only.
	Progress *Progress `json:"progress,omitempty"`

	// Completed is true once a countdown's target has been reached.
	Completed bool `json:"completed"`
}

// Delta returns the raw components.
func (s Snapshot) Delta() Delta {
	return Delta{
		Days:    s.Days.Value,
		Hours:   s.Hours.Value,
		Minutes: s.Minutes.Value,
		Seconds: s.Seconds.Value,
	}
}

// BuildSnapshot computes the reading of t at now.
func BuildSnapshot(t *model.Timer, now time.Time) Snapshot {
	d := Compute(t.Date, now, t.Type)
	s := Snapshot{
		TimerID: t.ID,
		Title:   t.Title,
		Type:    t.Type,
		Target:  t.Date,
		At:      now,
		Days:    newUnit(d.Days, DayForms),
		Hours:   newUnit(d.Hours, HourForms),
		Minutes: newUnit(d.Minutes, MinuteForms),
		Seconds: newUnit(d.Seconds, SecondForms),
	}
	if t.IsCountdown() {
		p := Estimate(t.CreationDate, t.Date, now)
		s.Progress = &p
		s.Completed = Diff(t.Date, now, t.Type) <= 0
	}
	return s
}
