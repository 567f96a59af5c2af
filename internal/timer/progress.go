package timer

import (
	"fmt"
	"time"
)

// CompletedCaption is shown once a countdown has reached its target.
const CompletedCaption = "Завершено!"

// Progress is how far a countdown has moved from its creation instant to its
// target. Percent is nil when it cannot be determined.
type Progress struct {
	Percent *float64 `json:"percent"`
	Caption string   `json:"caption,omitempty"`
}

// Defined reports whether a percentage is available.
func (p Progress) Defined() bool {
	return p.Percent != nil
}

// Value returns the percentage, or 0 when undefined.
func (p Progress) Value() float64 {
	if p.Percent == nil {
		return 0
	}
	return *p.Percent
}

// Estimate computes progress for a countdown created at created and due at
// target. Once the target has passed progress is complete whatever created
// is; otherwise a zero created instant, or one at or after the target,
// yields an undefined progress.
func Estimate(created, target, now time.Time) Progress {
	remaining := float64(target.Sub(now).Milliseconds())
	if remaining <= 0 {
		done := 100.0
		return Progress{Percent: &done, Caption: CompletedCaption}
	}
	if created.IsZero() {
		return Progress{}
	}

	total := float64(target.Sub(created).Milliseconds())
	elapsed := float64(now.Sub(created).Milliseconds())
	if total <= 0 {
		return Progress{}
	}

	percent := clampPercent(elapsed / total * 100)
	left := clampPercent(remaining / total * 100)
	return Progress{
		Percent: &percent,
		Caption: fmt.Sprintf("Осталось: %.1f%%", left),
	}
}

func clampPercent(v float64) float64 {
	return max(0, min(v, 100))
}
