package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/tui"
)

// boardCmd represents the board command.
var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"dashboard", "dash", "tui"},
	Short:   "Open the interactive live board",
	Long: `Open an interactive terminal board that shows every timer with a live
reading and, for countdowns, a progress bar.

Keyboard Controls:
  t - Toggle dark/light theme (saved)
  r - Reload timers from storage
  q - Quit the board

Examples:
  countdown board
  countdown tui`,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	// Configure the board
	config := tui.BoardConfig{
		Timers:        ctx.TimerRepo,
		Themes:        ctx.ThemeRepo,
		Clock:         ctx.Clock,
		Scheduler:     ctx.Scheduler(),
		Interval:      ctx.Config.Timer.TickInterval,
		ProgressWidth: ctx.Config.UI.ProgressWidth,
	}

	// Run the TUI board
	return tui.Run(config)
}
