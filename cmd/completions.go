package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/model"
)

// completeTimers returns timer IDs starting with toComplete, described by title.
func completeTimers(toComplete string) []string {
	if ctx == nil || ctx.TimerRepo == nil {
		return nil
	}

	timers, err := ctx.TimerRepo.List()
	if err != nil {
		return nil
	}

	var completions []string
	for _, t := range timers {
		if strings.HasPrefix(t.ID, toComplete) {
			completions = append(completions, t.ID+"\t"+t.Title)
		}
	}
	return completions
}

// completeTimerArgs completes timer IDs for commands that take them.
func completeTimerArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// show, edit and delete take exactly one ID
	if len(args) > 0 && cmd.Name() != "watch" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeTimers(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeTimerTypes completes the --type flag.
func completeTimerTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	types := []string{
		string(model.TimerTypeCountdown) + "\t" + model.TimerTypeCountdown.Label(),
		string(model.TimerTypeElapsed) + "\t" + model.TimerTypeElapsed.Label(),
	}

	var filtered []string
	for _, t := range types {
		if strings.HasPrefix(t, toComplete) {
			filtered = append(filtered, t)
		}
	}
	return filtered, cobra.ShellCompDirectiveNoFileComp
}
