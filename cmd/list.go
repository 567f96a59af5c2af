package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// List command flags.
var (
	listFlagTable bool
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "Show every timer once",
	Long: `Show a single reading of every timer: days, hours, minutes and seconds
left (countdown) or passed (elapsed), plus progress for countdowns.

Examples:
  countdown list
  countdown list --table
  countdown list --format json`,
	RunE: runList,
}

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one timer in detail",
	Long: `Show a timer's stored fields and its current reading.

Examples:
  countdown show timer1
  countdown show timer1 --format json`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTimerArgs,
	RunE:              runShow,
}

func init() {
	listCmd.Flags().BoolVarP(&listFlagTable, "table", "t", false, "Compact table output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

// snapshotAll reads every stored timer at the context clock's now.
func snapshotAll() ([]timer.Snapshot, error) {
	list, err := ctx.TimerRepo.List()
	if err != nil {
		return nil, err
	}
	return snapshotTimers(list), nil
}

func snapshotTimers(list []*model.Timer) []timer.Snapshot {
	now := ctx.Clock.Now()
	snaps := make([]timer.Snapshot, 0, len(list))
	for _, t := range list {
		snaps = append(snaps, timer.BuildSnapshot(t, now))
	}
	return snaps
}

func runList(cmd *cobra.Command, args []string) error {
	snaps, err := snapshotAll()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSnapshots(ctx.Clock.Now(), snaps)
	}

	cli := ctx.CLIFormatter()
	if listFlagTable {
		if len(snaps) == 0 {
			cli.PrintSnapshots(snaps)
			return nil
		}
		cli.PrintTimerTable(snaps)
		return nil
	}
	cli.PrintSnapshots(snaps)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := ctx.TimerRepo.Get(args[0])
	if err != nil {
		return err
	}
	snap := timer.BuildSnapshot(t, ctx.Clock.Now())

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSnapshot(snap)
	}

	cli := ctx.CLIFormatter()
	cli.PrintTimer(t)
	cli.Println()
	cli.PrintSnapshot(snap)
	return nil
}
