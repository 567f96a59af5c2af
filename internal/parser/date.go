// Package parser turns user-entered target dates into instants.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/countdown/internal/errors"
)

// InputLayout is the minute-precision local layout used by edit forms.
const InputLayout = "2006-01-02T15:04"

// layouts are tried in order before natural language parsing. Layouts
// without a zone are read in the caller's location.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	InputLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
}

// DateExamples lists accepted date formats for help text.
var DateExamples = []string{
	"2027-01-01T00:00",
	"2027-01-01 18:30",
	"31.12.2026 23:59",
	"+90m, +3d, -1w",
	"next friday 9am",
}

// relativeRegex matches offsets from now like "+5m", "-2d", "+1w".
var relativeRegex = regexp.MustCompile(`^([+-])(\d+)([smhdw])$`)

// ParseTargetDate parses a target date relative to now. It accepts ISO
// dates, the form layout, signed offsets, and natural language.
func ParseTargetDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.NewValidationError("date", "", errors.ErrDateRequired)
	}

	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		return parseRelative(match[1], match[2], match[3], now), nil
	}

	loc := now.Location()
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}

	if strings.EqualFold(input, "now") {
		return now, nil
	}

	// Use go-dateparser for natural language parsing
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, invalidDate(input)
	}
	return result.Time, nil
}

// parseRelative applies a signed offset to now.
func parseRelative(sign, numStr, unit string, now time.Time) time.Time {
	num, _ := strconv.Atoi(numStr)
	if sign == "-" {
		num = -num
	}

	switch unit {
	case "s":
		return now.Add(time.Duration(num) * time.Second)
	case "m":
		return now.Add(time.Duration(num) * time.Minute)
	case "h":
		return now.Add(time.Duration(num) * time.Hour)
	case "d":
		return now.AddDate(0, 0, num)
	default: // w
		return now.AddDate(0, 0, 7*num)
	}
}

func invalidDate(input string) error {
	ue := errors.NewValidationError("date", input, errors.ErrInvalidDate)
	ue.Suggestion = "Try formats like " + strings.Join(DateExamples, ", ") + "."
	return ue
}

// FormatInput formats t in loc using InputLayout.
func FormatInput(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(InputLayout)
}
