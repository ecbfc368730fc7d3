// Package main is the entry point for the console character creator
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-creator/internal/config"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	createOpts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "creator",
		Short: "Interactive D&D 5e character creator",
		Long: `Creator walks through race, class and background selection, generates ability
scores by rolling, point buy or the standard array, and prints the finished character.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, createOpts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides CREATOR_LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (text, json); overrides CREATOR_LOG_FORMAT")
	createOpts.bind(cmd)

	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newRacesCmd())
	cmd.AddCommand(newClassesCmd())
	cmd.AddCommand(newBackgroundsCmd())
	cmd.AddCommand(newRollCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err for the user and logs its code and metadata
func reportError(w io.Writer, err error) {
	slog.Debug("Command failed",
		"code", errors.GetCode(err),
		"meta", errors.GetMeta(err))
	fmt.Fprintf(w, "Error: %v\n", err)
}

func setupLogging(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(opts.logLevel)
	}
	if opts.logFormat != "" {
		cfg.LogFormat = strings.ToLower(opts.logFormat)
	}

	logger, err := config.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	slog.Debug("Logging configured", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return nil
}
