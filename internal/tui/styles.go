// Package tui provides the live timer board for Countdown.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/countdown/internal/model"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Color palettes for the light and dark themes.
var (
	LightPalette = Palette{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Text:    lipgloss.Color("#1F2937"), // Near black
		Muted:   lipgloss.Color("#6B7280"), // Gray
		Border:  lipgloss.Color("#D1D5DB"), // Light gray
		Success: lipgloss.Color("#059669"), // Green
		Warning: lipgloss.Color("#D97706"), // Amber
		Error:   lipgloss.Color("#DC2626"), // Red
	}

	DarkPalette = Palette{
		Primary: lipgloss.Color("#A78BFA"), // Light purple
		Text:    lipgloss.Color("#F9FAFB"), // Near white
		Muted:   lipgloss.Color("#9CA3AF"), // Gray
		Border:  lipgloss.Color("#4B5563"), // Dark gray
		Success: lipgloss.Color("#10B981"), // Green
		Warning: lipgloss.Color("#F59E0B"), // Yellow
		Error:   lipgloss.Color("#EF4444"), // Red
	}
)

// PaletteFor returns the palette of a theme.
func PaletteFor(theme model.Theme) Palette {
	if theme.IsDark() {
		return DarkPalette
	}
	return LightPalette
}

// Styles holds the rendered styles for one theme.
type Styles struct {
	Theme   model.Theme
	Palette Palette

	// Title is used for the board header.
	Title lipgloss.Style
	// Subtitle is used for secondary information.
	Subtitle lipgloss.Style
	// CardTitle is used for timer titles.
	CardTitle lipgloss.Style
	// Digits is used for the two-digit components.
	Digits lipgloss.Style
	// Label is used for unit labels under the digits.
	Label lipgloss.Style
	// Caption is used for the progress caption.
	Caption lipgloss.Style
	// Complete is used once a countdown is done.
	Complete lipgloss.Style
	// Warning is used for status messages.
	Warning lipgloss.Style
	// Error is used for error messages.
	Error lipgloss.Style
	// HelpKey and HelpDesc render keyboard shortcuts.
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	// Card and CompleteCard frame each timer.
	Card         lipgloss.Style
	CompleteCard lipgloss.Style
	// BarFilled and BarEmpty color the progress bar cells.
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(theme model.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Theme:   theme,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		Subtitle:  lipgloss.NewStyle().Foreground(p.Muted),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Digits:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Label:     lipgloss.NewStyle().Foreground(p.Muted),
		Caption:   lipgloss.NewStyle().Italic(true).Foreground(p.Muted),
		Complete:  lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		HelpKey:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		HelpDesc:  lipgloss.NewStyle().Foreground(p.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2).
			MarginBottom(1),
		CompleteCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Success).
			Padding(0, 2).
			MarginBottom(1),

		BarFilled: lipgloss.NewStyle().Foreground(p.Success),
		BarEmpty:  lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// ProgressBar creates a progress bar string.
func (s Styles) ProgressBar(percentage float64, width int) string {
	percentage = max(0, min(percentage, 100))

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return s.BarFilled.Render(strings.Repeat("█", filled)) + // Full block
		s.BarEmpty.Render(strings.Repeat("░", empty)) // Light shade
}

// HelpBar renders the keyboard shortcuts line.
func (s Styles) HelpBar() string {
	keys := []struct{ key, desc string }{
		{"t", "theme"},
		{"r", "reload"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, s.HelpKey.Render(k.key)+" "+s.HelpDesc.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}
