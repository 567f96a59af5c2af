package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrTitleRequired:      "Provide a title with --title.",
	ErrTitleTooLong:       "Titles must be 4096 characters or fewer.",
	ErrInvalidTimerID:     "IDs must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods.",
	ErrDateRequired:       "Provide a target date with --date, e.g. '2027-01-01T00:00' or 'in 3 days'.",
	ErrInvalidDate:        "Try formats like '2027-01-01T00:00', '2027-01-01 18:30', or 'next friday 9am'.",
	ErrInvalidTimerType:   "Use --type countdown or --type elapsed.",
	ErrInvalidTheme:       "Use 'dark', 'light', or 'toggle'.",
	ErrTimerNotFound:      "Use 'countdown list' to see available timers.",
	ErrInvalidCredentials: "Check --user and --password (or COUNTDOWN_ADMIN_USER / COUNTDOWN_ADMIN_PASSWORD).",
	ErrNotAuthenticated:   "Admin commands require --user and --password.",
	ErrStorage:            "Check permissions on the data directory (~/.local/share/countdown/) or set COUNTDOWN_DATABASE.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// FormatError formats an error with its suggestion on a second line.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
