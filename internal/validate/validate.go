// Package validate provides input validation helpers for timer forms.
package validate

import (
	"regexp"
	"unicode/utf8"

	"github.com/manav03panchal/countdown/internal/errors"
)

const (
	// MaxTitleLength is a sanity bound on title length.
	MaxTitleLength = 4096
	// MaxIDLength is the maximum length for a timer ID.
	MaxIDLength = 64
)

// idRegex validates timer IDs (alphanumeric, dashes, underscores, periods).
var idRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Title validates a sanitized timer title.
func Title(title string) error {
	if title == "" {
		return errors.NewValidationError("title", "", errors.ErrTitleRequired)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewValidationError("title", TruncateString(title, 32), errors.ErrTitleTooLong)
	}
	return nil
}

// TimerID validates a caller-supplied timer ID. An empty ID is allowed and
// means a new timer.
func TimerID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) > MaxIDLength || !idRegex.MatchString(id) {
		return errors.NewValidationError("id", id, errors.ErrInvalidTimerID)
	}
	return nil
}
