package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/countdown/internal/timer"
)

// CardComponent displays one timer.
type CardComponent struct {
	Snapshot      timer.Snapshot
	Width         int
	ProgressWidth int
	Styles        Styles
}

// View renders the card.
func (c *CardComponent) View() string {
	s := c.Snapshot
	st := c.Styles

	var content strings.Builder

	content.WriteString(st.CardTitle.Render(s.Title))
	content.WriteString("  ")
	content.WriteString(st.Subtitle.Render(s.Type.Label()))
	content.WriteString("\n\n")

	columns := make([]string, 0, 4)
	for _, u := range []timer.Unit{s.Days, s.Hours, s.Minutes, s.Seconds} {
		col := lipgloss.JoinVertical(lipgloss.Center,
			st.Digits.Render(u.Padded),
			st.Label.Render(u.Label),
		)
		columns = append(columns, lipgloss.NewStyle().PaddingRight(3).Render(col))
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if s.Progress != nil && s.Progress.Defined() {
		content.WriteString("\n\n")
		content.WriteString(st.ProgressBar(s.Progress.Value(), c.ProgressWidth))
		if s.Progress.Caption != "" {
			content.WriteString("  ")
			if s.Completed {
				content.WriteString(st.Complete.Render(s.Progress.Caption))
			} else {
				content.WriteString(st.Caption.Render(s.Progress.Caption))
			}
		}
	}

	box := st.Card
	if s.Completed {
		box = st.CompleteCard
	}
	if c.Width > 4 {
		box = box.Width(c.Width - 4)
	}
	return box.Render(content.String())
}
