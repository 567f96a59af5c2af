package validate

import (
	"strings"
	"unicode"
)

// SanitizeTitle trims a title and removes control characters.
func SanitizeTitle(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))
	for _, r := range title {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// TruncateString truncates a string to maxLen runes, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// SafeFilename converts a string to a safe filename.
func SafeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "",
	)
	s = replacer.Replace(s)

	// Trim whitespace and dots from ends
	s = strings.Trim(s, " .")

	if len(s) > 200 {
		s = s[:200]
	}

	return s
}
