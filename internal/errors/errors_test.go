package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
	assert.Equal(t, "invalid input", err.Error())
}

func TestNewValidationError(t *testing.T) {
	t.Run("wraps_sentinel", func(t *testing.T) {
		err := NewValidationError("title", "", ErrTitleRequired)
		assert.True(t, errors.Is(err, ErrTitleRequired))
		assert.Equal(t, "title is required", err.Error())
		assert.Equal(t, Suggestions[ErrTitleRequired], err.Suggestion)
	})

	t.Run("includes_value", func(t *testing.T) {
		err := NewValidationError("date", "someday", ErrInvalidDate)
		assert.Equal(t, "invalid date: 'someday'", err.Error())
	})
}

func TestIsUserError(t *testing.T) {
	t.Run("wrapped_user_error", func(t *testing.T) {
		err := fmt.Errorf("context: %w", NewUserError("test", ""))
		assert.True(t, IsUserError(err))
	})

	t.Run("not_user_error", func(t *testing.T) {
		assert.False(t, IsUserError(errors.New("plain error")))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.False(t, IsUserError(nil))
	})
}

// =============================================================================
// AuthError Tests
// =============================================================================

func TestAuthError(t *testing.T) {
	err := NewAuthError("admin", ErrInvalidCredentials)
	assert.True(t, IsAuthError(err))
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.Equal(t, "invalid username or password", err.Error())
	assert.False(t, IsUserError(err))
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemError(t *testing.T) {
	t.Run("nil_cause_returns_nil", func(t *testing.T) {
		assert.Nil(t, NewSystemErrorWithOp("save", "failed", nil))
	})

	t.Run("matches_storage_sentinel", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := NewSystemErrorWithOp("save timers", "failed to write", cause)
		assert.True(t, IsSystemError(err))
		assert.True(t, errors.Is(err, ErrStorage))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "failed to write during save timers: disk gone", err.Error())
	})
}

// =============================================================================
// Classification and Suggestion Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user", NewValidationError("title", "", ErrTitleRequired), CategoryUser},
		{"auth", NewAuthError("x", ErrInvalidCredentials), CategoryAuth},
		{"system", NewSystemErrorWithOp("op", "msg", errors.New("x")), CategorySystem},
		{"plain", errors.New("x"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestGetSuggestion(t *testing.T) {
	assert.Empty(t, GetSuggestion(nil))
	assert.Empty(t, GetSuggestion(errors.New("unknown")))
	assert.Equal(t, Suggestions[ErrTimerNotFound], GetSuggestion(fmt.Errorf("show: %w", ErrTimerNotFound)))

	ue := NewUserError("bad", "do better")
	assert.Equal(t, "do better", GetSuggestion(ue))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "boom", FormatError(errors.New("boom")))
	assert.Equal(t,
		"timer not found\n"+Suggestions[ErrTimerNotFound],
		FormatError(ErrTimerNotFound))
}
