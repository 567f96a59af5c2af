// Package errors provides consistent error types for the Countdown CLI.
// It defines three categories: UserError (invalid input the user can fix),
// AuthError (rejected admin credentials), and SystemError (storage or I/O failures).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrInvalidTimerID     = errors.New("invalid timer id")
	ErrDateRequired       = errors.New("date is required")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTimerType   = errors.New("invalid timer type")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrTimerNotFound      = errors.New("timer not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("admin login required")
	ErrStorage            = errors.New("storage failure")
)

// UserError represents an error that the user can fix.
// Validation failures on save are reported as UserErrors.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Sentinel for errors.Is matching (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewValidationError creates a UserError for a rejected field, wrapping the
// sentinel that describes the violation.
func NewValidationError(field, value string, cause error) *UserError {
	return &UserError{
		Message:    cause.Error(),
		Field:      field,
		Value:      value,
		Cause:      cause,
		Suggestion: Suggestions[cause],
	}
}

// AuthError is returned when an admin action is attempted without valid credentials.
type AuthError struct {
	User  string
	Cause error
}

func (e *AuthError) Error() string {
	return e.Cause.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new AuthError.
func NewAuthError(user string, cause error) *AuthError {
	return &AuthError{User: user, Cause: cause}
}

// SystemError represents a system-level error that the user cannot directly fix.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s: %v", e.Message, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// Is lets every SystemError match ErrStorage.
func (e *SystemError) Is(target error) bool {
	return target == ErrStorage
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
// Returns nil when cause is nil.
func NewSystemErrorWithOp(op, message string, cause error) error {
	if cause == nil {
		return nil
	}
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsAuthError checks if an error is an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Category represents the type of error for display purposes.
type Category string

const (
	CategoryUnknown Category = "error"
	CategoryUser    Category = "validation_error"
	CategoryAuth    Category = "auth_error"
	CategorySystem  Category = "system_error"
)

// Classify determines the category of an error.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryUnknown
	case IsUserError(err):
		return CategoryUser
	case IsAuthError(err):
		return CategoryAuth
	case IsSystemError(err):
		return CategorySystem
	default:
		return CategoryUnknown
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
