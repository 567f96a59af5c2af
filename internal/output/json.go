package output

import (
	"time"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// TimerOutput represents a stored timer in JSON output.
type TimerOutput struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	CreationDate string `json:"creation_date,omitempty"`
}

// NewTimerOutput creates a TimerOutput from a Timer.
func NewTimerOutput(t *model.Timer) *TimerOutput {
	out := &TimerOutput{
		ID:    t.ID,
		Title: t.Title,
		Type:  string(t.Type),
		Date:  t.Date.Format(time.RFC3339),
	}
	if !t.CreationDate.IsZero() {
		out.CreationDate = t.CreationDate.Format(time.RFC3339)
	}
	return out
}

// SnapshotsResponse represents a set of readings in JSON.
type SnapshotsResponse struct {
	At     string           `json:"at"`
	Timers []timer.Snapshot `json:"timers"`
	Count  int              `json:"count"`
}

// NewSnapshotsResponse creates a SnapshotsResponse.
func NewSnapshotsResponse(at time.Time, snaps []timer.Snapshot) *SnapshotsResponse {
	if snaps == nil {
		snaps = []timer.Snapshot{}
	}
	return &SnapshotsResponse{
		At:     at.Format(time.RFC3339),
		Timers: snaps,
		Count:  len(snaps),
	}
}

// SaveResponse represents the add/edit output in JSON.
type SaveResponse struct {
	Status string       `json:"status"`
	Timer  *TimerOutput `json:"timer"`
}

// DeleteResponse represents the delete output in JSON.
type DeleteResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// ThemeResponse represents the theme output in JSON.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Category   string `json:"category"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// NewErrorResponse creates an ErrorResponse from err.
func NewErrorResponse(err error) *ErrorResponse {
	return &ErrorResponse{
		Status:     "error",
		Category:   string(errors.Classify(err)),
		Error:      err.Error(),
		Suggestion: errors.GetSuggestion(err),
	}
}

// PrintSnapshots outputs readings in JSON format.
func (j *JSONFormatter) PrintSnapshots(at time.Time, snaps []timer.Snapshot) error {
	return j.JSON(NewSnapshotsResponse(at, snaps))
}

// PrintSnapshot outputs one reading as a JSON line.
func (j *JSONFormatter) PrintSnapshot(s timer.Snapshot) error {
	return j.JSON(s)
}

// PrintSaved outputs a save result in JSON format.
func (j *JSONFormatter) PrintSaved(t *model.Timer, created bool) error {
	status := "updated"
	if created {
		status = "created"
	}
	return j.JSON(SaveResponse{Status: status, Timer: NewTimerOutput(t)})
}

// PrintDeleted outputs a delete result in JSON format.
func (j *JSONFormatter) PrintDeleted(id string, deleted bool) error {
	status := "kept"
	if deleted {
		status = "deleted"
	}
	return j.JSON(DeleteResponse{Status: status, ID: id})
}

// PrintTheme outputs the theme in JSON format.
func (j *JSONFormatter) PrintTheme(theme model.Theme) error {
	return j.JSON(ThemeResponse{Theme: string(theme)})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(err error) error {
	return j.JSON(NewErrorResponse(err))
}
