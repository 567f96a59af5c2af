package validate

import (
	"strings"
	"testing"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Title Tests
// =============================================================================

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid", "Новый Год", nil},
		{"long_sentence", strings.Repeat("я", 129), nil},
		{"max_length", strings.Repeat("я", MaxTitleLength), nil},
		{"empty", "", errors.ErrTitleRequired},
		{"too_long", strings.Repeat("я", MaxTitleLength+1), errors.ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Title(tt.title)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errors.IsUserError(err))
		})
	}
}

// =============================================================================
// TimerID Tests
// =============================================================================

func TestTimerID(t *testing.T) {
	valid := []string{"", "timer1", "timer1735689600123", "my-timer_2.0"}
	for _, id := range valid {
		assert.NoError(t, TimerID(id), "id %q", id)
	}

	invalid := []string{"-lead", ".hidden", "has space", "slash/id", strings.Repeat("a", MaxIDLength+1)}
	for _, id := range invalid {
		err := TimerID(id)
		assert.ErrorIs(t, err, errors.ErrInvalidTimerID, "id %q", id)
	}
}

// =============================================================================
// Sanitize Tests
// =============================================================================

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "Старт проекта", SanitizeTitle("  Старт\x00 проекта\n "))
	assert.Equal(t, "", SanitizeTitle(" \t "))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcdefg...", TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "Нов...", TruncateString("Новый Год", 6))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "timers_2025", SafeFilename("timers/2025"))
	assert.Equal(t, "a_b_c", SafeFilename(" a:b*c. "))
}
