package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
	ProgressWidth int
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f, ProgressWidth: 30}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// display returns a snapshot renderer matching the formatter's settings.
func (c *CLIFormatter) display() *timer.Display {
	return &timer.Display{
		Writer:        c.Writer,
		UseColor:      c.IsColorEnabled(),
		ProgressWidth: c.ProgressWidth,
	}
}

// PrintSnapshot prints one timer card.
func (c *CLIFormatter) PrintSnapshot(s timer.Snapshot) {
	c.Println(c.display().RenderSnapshot(s))
}

// PrintSnapshots prints timer cards separated by blank lines.
func (c *CLIFormatter) PrintSnapshots(snaps []timer.Snapshot) {
	if len(snaps) == 0 {
		c.Muted("No timers.")
		c.Muted("Use 'countdown add' to create one.")
		return
	}
	for i, s := range snaps {
		if i > 0 {
			c.Println()
		}
		c.PrintSnapshot(s)
	}
}

// ClearScreen clears the terminal before a redraw.
func (c *CLIFormatter) ClearScreen() {
	c.display().ClearScreen()
}

// PrintComplete prints a countdown completion line.
func (c *CLIFormatter) PrintComplete(s timer.Snapshot) {
	c.Println(c.display().RenderComplete(s))
}

// PrintTimer prints a timer's stored fields.
func (c *CLIFormatter) PrintTimer(t *model.Timer) {
	c.Title(t.Title)
	c.Printf("  ID: %s\n", t.ID)
	c.Printf("  Type: %s (%s)\n", t.Type, t.Type.Label())
	c.Printf("  Date: %s\n", FormatTime(t.Date))
	if !t.CreationDate.IsZero() {
		c.Printf("  Created: %s\n", FormatTime(t.CreationDate))
	}
}

// PrintTimerSaved prints a save confirmation.
func (c *CLIFormatter) PrintTimerSaved(t *model.Timer, created bool) {
	verb := "Updated"
	if created {
		verb = "Created"
	}
	c.Success(fmt.Sprintf("%s timer %s", verb, t.ID))
	c.Printf("  %s · %s · %s\n", t.Title, t.Type.Label(), FormatTimeShort(t.Date))
}

// PrintTimerTable prints a compact table of snapshots.
func (c *CLIFormatter) PrintTimerTable(snaps []timer.Snapshot) {
	rows := make([]TableRow, 0, len(snaps))
	for _, s := range snaps {
		progress := ""
		if s.Progress != nil && s.Progress.Defined() {
			progress = fmt.Sprintf("%.1f%%", s.Progress.Value())
		}
		rows = append(rows, TableRow{Columns: []string{
			s.TimerID, s.Title, string(s.Type), timer.FormatClock(s), progress,
		}})
	}
	c.PrintTable([]string{"ID", "TITLE", "TYPE", "DD:HH:MM:SS", "PROGRESS"}, rows)
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table. Widths are measured in terminal cells.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(col))
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(runewidth.FillRight(h, widths[i]) + "  ")
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(runewidth.FillRight(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
