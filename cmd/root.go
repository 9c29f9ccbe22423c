// Package cmd implements the CLI commands for lessonmd using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/lessonmd/core/config"
	"github.com/spf13/cobra"
)

// Persistent flag variables.
var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lessonmd",
	Short: "lessonmd — render course lesson content to HTML",
	Long: `lessonmd renders author-written lesson content, a small line-oriented
markdown dialect, into the HTML fragment the course player displays. It can
also produce a JSON outline, a PDF handout, and import legacy HTML lessons.

Usage:
  lessonmd render <lesson> [flags]
  lessonmd inspect <lesson>
  lessonmd import <url|file.html>`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, applies logging flags and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		loaded.Log.Format = flagLogFormat
	}

	level, err := config.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch loaded.Log.Format {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", loaded.Log.Format)
	}
	slog.SetDefault(slog.New(handler))

	cfg = loaded
	return nil
}
