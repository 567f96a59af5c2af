package timer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Display renders snapshots as plain terminal text.
type Display struct {
	Writer        io.Writer
	UseColor      bool
	ProgressWidth int
}

// NewDisplay creates a display writing to stdout.
func NewDisplay() *Display {
	return &Display{
		Writer:        os.Stdout,
		UseColor:      true,
		ProgressWidth: 30,
	}
}

// Styles for the text display.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	digitsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	completeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green
)

func (d *Display) style(s lipgloss.Style, text string) string {
	if d.UseColor {
		return s.Render(text)
	}
	return text
}

// FormatDigits formats the four components as "DD дней HH часов MM минут SS секунд".
func FormatDigits(s Snapshot) string {
	parts := make([]string, 0, 4)
	for _, u := range []Unit{s.Days, s.Hours, s.Minutes, s.Seconds} {
		parts = append(parts, u.Padded+" "+u.Label)
	}
	return strings.Join(parts, " ")
}

// FormatClock formats the components compactly as DD:HH:MM:SS.
func FormatClock(s Snapshot) string {
	return fmt.Sprintf("%s:%s:%s:%s", s.Days.Padded, s.Hours.Padded, s.Minutes.Padded, s.Seconds.Padded)
}

// RenderSnapshot renders a timer card.
func (d *Display) RenderSnapshot(s Snapshot) string {
	var b strings.Builder

	b.WriteString(d.style(titleStyle, s.Title))
	b.WriteString(" ")
	b.WriteString(d.style(typeStyle, "("+s.Type.Label()+")"))
	b.WriteString("\n")
	b.WriteString(d.style(digitsStyle, FormatDigits(s)))

	if s.Progress != nil && s.Progress.Defined() {
		b.WriteString("\n")
		b.WriteString(d.style(progressStyle, d.renderProgressBar(s.Progress.Value()/100)))
		if s.Progress.Caption != "" {
			b.WriteString(" ")
			caption := d.style(progressStyle, s.Progress.Caption)
			if s.Completed {
				caption = d.style(completeStyle, s.Progress.Caption)
			}
			b.WriteString(caption)
		}
	}

	return b.String()
}

// RenderComplete renders the completion line for a countdown.
func (d *Display) RenderComplete(s Snapshot) string {
	return d.style(completeStyle, fmt.Sprintf("%s: %s", s.Title, CompletedCaption))
}

// renderProgressBar creates a progress bar string.
func (d *Display) renderProgressBar(progress float64) string {
	return RenderBar(progress, d.ProgressWidth)
}

// RenderBar creates a bar of width cells filled to progress (0..1).
func RenderBar(progress float64, width int) string {
	if width <= 0 {
		width = 30
	}
	filled := int(progress * float64(width))
	filled = max(0, min(filled, width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s]", bar)
}

// ClearScreen clears the terminal screen.
func (d *Display) ClearScreen() {
	fmt.Fprint(d.Writer, "\033[H\033[2J")
}
