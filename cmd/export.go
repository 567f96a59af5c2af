package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/validate"
)

// Export command flags.
var (
	exportFlagYAML   bool
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export [--yaml] [-o FILE]",
	Aliases: []string{"ex", "dump"},
	Short:   "Export the timer collection",
	Long: `Export every stored timer as JSON (default) or YAML.

Examples:
  countdown export
  countdown export --yaml
  countdown export -o timers.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportFlagYAML, "yaml", false, "Write YAML instead of JSON")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	timers, err := ctx.TimerRepo.List()
	if err != nil {
		return err
	}
	doc := output.NewExportDocument(ctx.Clock.Now(), timers)

	if exportFlagOutput == "" {
		return ctx.Formatter.Export(doc, exportFlagYAML)
	}

	path, err := exportPath(exportFlagOutput)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.NewSystemErrorWithOp("export", "failed to create "+path, err)
	}
	f := &output.Formatter{Writer: file, Format: output.FormatPlain, ColorMode: output.ColorNever}
	if err := f.Export(doc, exportFlagYAML); err != nil {
		file.Close()
		return err
	}
	// A failed close can lose buffered data, so it fails the export.
	if err := file.Close(); err != nil {
		return errors.NewSystemErrorWithOp("export", "failed to write "+path, err)
	}
	return nil
}

// exportPath keeps the directory of p and makes its base name safe.
func exportPath(p string) (string, error) {
	base := validate.SafeFilename(filepath.Base(p))
	if base == "" {
		return "", errors.NewUserError("invalid output file name",
			"Pass a file name with -o, e.g. -o timers.json.")
	}
	return filepath.Join(filepath.Dir(p), base), nil
}
