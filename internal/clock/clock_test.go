package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal(t *testing.T) {
	before := time.Now()
	now := Real{}.Now()
	assert.False(t, now.Before(before))
}

func TestManual(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())

	later := start.AddDate(1, 0, 0)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}
