package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
)

// themeCmd represents the theme command.
var themeCmd = &cobra.Command{
	Use:   "theme [dark|light|toggle]",
	Short: "Show or change the color theme",
	Long: `Show the saved color theme, set it, or toggle between dark and light.
The theme is used by the live board.

Examples:
  countdown theme
  countdown theme light
  countdown theme toggle`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	theme, err := applyTheme(args)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTheme(theme)
	}
	ctx.CLIFormatter().Printf("Theme: %s\n", theme)
	return nil
}

func applyTheme(args []string) (model.Theme, error) {
	if len(args) == 0 {
		return ctx.ThemeRepo.Get()
	}

	if args[0] == "toggle" {
		theme, err := ctx.ThemeRepo.Toggle()
		if err != nil {
			return "", err
		}
		logging.LogOperation("toggle_theme", logging.KeyTheme, theme)
		return theme, nil
	}

	theme, err := model.ParseTheme(args[0])
	if err != nil {
		return "", errors.NewValidationError("theme", args[0], errors.ErrInvalidTheme)
	}
	if err := ctx.ThemeRepo.Set(theme); err != nil {
		return "", err
	}
	logging.LogOperation("set_theme", logging.KeyTheme, theme)
	return theme, nil
}
