// Package cmd provides the CLI commands for Countdown.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/config"
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat    string
	flagColor     string
	flagDebug     bool
	flagConfigDir string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Countdown and elapsed-time timers in your terminal",
	Long: `Countdown keeps a small collection of named timers and shows how much
time is left until (or has passed since) each of them, down to the second.

Examples:
  countdown
  countdown watch
  countdown board
  countdown add --title 'Отпуск' --date 2027-07-01T09:00 --password secret
  countdown theme toggle`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return err
		}

		configDir := flagConfigDir
		if configDir == "" {
			configDir = config.DefaultConfigDir()
		}
		cfg, err := config.Load(configDir)
		if err != nil {
			return errors.NewSystemErrorWithOp("load config", "failed to read configuration", err)
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Config = cfg
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: runList,
}

// closeContext releases the runtime context, if one was opened.
func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Errors are printed before returning.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		_ = closeContext()
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "",
		"Directory containing config.yaml (default $XDG_CONFIG_HOME/countdown)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("countdown %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Based on Zeit (https://github.com/mrusme/zeit)")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// printError reports err in the active output format.
func printError(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.JSONFormatter().PrintError(err)
		return
	}
	rootCmd.PrintErrln("Error: " + errors.FormatError(err))
}

// Die prints an error and exits.
func Die(err error) {
	printError(err)
	_ = closeContext()
	os.Exit(1)
}
