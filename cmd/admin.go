package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/countdown/internal/admin"
)

// Admin credential flags, shared by every admin command.
var (
	adminFlagUser     string
	adminFlagPassword string
)

// Add command flags.
var (
	addFlagTitle string
	addFlagType  string
	addFlagDate  string
)

// Edit command flags.
var (
	editFlagTitle string
	editFlagDate  string
)

// Delete command flags.
var (
	deleteFlagYes bool
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add --title TITLE --date DATE [--type countdown|elapsed]",
	Aliases: []string{"new", "create"},
	Short:   "Create a timer (admin)",
	Long: `Create a timer. A countdown shows the time left until DATE; an elapsed
timer shows the time passed since DATE. Requires the admin credentials.

DATE accepts '2027-01-01T00:00', '2027-01-01 18:30', relative offsets
like '+3d' or '-2h', and natural language like 'next friday 9am'.

Examples:
  countdown add --title 'Новый Год' --date 2027-01-01T00:00 --password secret
  countdown add --title 'Не курю' --type elapsed --date '-30d' --password secret`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit ID [--title TITLE] [--date DATE]",
	Short: "Change a timer's title or date (admin)",
	Long: `Change a timer's title or date. The timer type and creation date are kept.
Requires the admin credentials.

Examples:
  countdown edit timer1 --title 'Новый Год!' --password secret
  countdown edit timer1 --date 2027-01-01T00:00 --password secret`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTimerArgs,
	RunE:              runEdit,
}

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete ID [--yes]",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a timer (admin)",
	Long: `Delete a timer after confirmation. Requires the admin credentials.

Examples:
  countdown delete timer2 --password secret
  countdown delete timer2 --yes --password secret`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTimerArgs,
	RunE:              runDelete,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagTitle, "title", "t", "", "Timer title")
	addCmd.Flags().StringVar(&addFlagType, "type", "", "Timer type: countdown (default) or elapsed")
	addCmd.Flags().StringVarP(&addFlagDate, "date", "d", "", "Target date")
	addCmd.RegisterFlagCompletionFunc("type", completeTimerTypes)

	editCmd.Flags().StringVarP(&editFlagTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editFlagDate, "date", "d", "", "New target date")

	deleteCmd.Flags().BoolVarP(&deleteFlagYes, "yes", "y", false, "Delete without asking")

	for _, c := range []*cobra.Command{addCmd, editCmd, deleteCmd} {
		c.Flags().StringVarP(&adminFlagUser, "user", "u", "admin", "Admin user name")
		c.Flags().StringVarP(&adminFlagPassword, "password", "p", "", "Admin password (prompted when omitted on a terminal)")
		rootCmd.AddCommand(c)
	}
}

// login authenticates the admin session from the flags, prompting for the
// password when it was omitted and the command's input is a terminal.
func login(cmd *cobra.Command) error {
	password := adminFlagPassword
	if f, ok := cmd.InOrStdin().(*os.File); ok && password == "" && isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		password = string(raw)
	}
	return ctx.Login(adminFlagUser, password)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := login(cmd); err != nil {
		return err
	}

	saved, err := ctx.Admin.SaveRequested(admin.Form{
		Title: addFlagTitle,
		Type:  addFlagType,
		Date:  addFlagDate,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSaved(saved, true)
	}
	ctx.CLIFormatter().PrintTimerSaved(saved, true)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := login(cmd); err != nil {
		return err
	}

	form, err := ctx.Admin.EditRequested(args[0])
	if err != nil {
		return err
	}
	if editFlagTitle != "" {
		form.Title = editFlagTitle
	}
	if editFlagDate != "" {
		form.Date = editFlagDate
	}

	saved, err := ctx.Admin.SaveRequested(form)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSaved(saved, false)
	}
	ctx.CLIFormatter().PrintTimerSaved(saved, false)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := login(cmd); err != nil {
		return err
	}

	var confirm admin.Confirmer
	if !deleteFlagYes {
		confirm = promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	deleted, err := ctx.Admin.DeleteRequested(args[0], confirm)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDeleted(args[0], deleted)
	}
	cli := ctx.CLIFormatter()
	if deleted {
		cli.Success("Deleted timer " + args[0])
	} else {
		cli.Muted("Kept timer " + args[0])
	}
	return nil
}

// promptConfirmer asks a y/N question on out and reads the answer from in.
// Anything but y or yes, including end of input, declines.
func promptConfirmer(in io.Reader, out io.Writer) admin.Confirmer {
	reader := bufio.NewReader(in)
	return admin.ConfirmFunc(func(prompt string) (bool, error) {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "д", "да":
			return true, nil
		}
		return false, nil
	})
}
