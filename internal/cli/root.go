// Package cli provides the command-line interface for edgebubble.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"edgebubble/internal/config"
)

// Version information (set at build time).
var Version = "dev"

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile   string
		closeLogs func() error
	)

	rootCmd := &cobra.Command{
		Use:   "edgebubble",
		Short: "A draggable bubble that snaps to the nearest terminal edge",
		Long: `edgebubble draws a small box you can drag with the mouse.

On release it snaps to the edge of the terminal whose triangle, formed by
the two screen diagonals, contains the pointer.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for commands that never read it
			switch cmd.Name() {
			case "help", "completion", "__complete", "version", "init":
				return nil
			}

			cfg, err := config.Load(config.FindConfigFile(cfgFile), cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger, closer, err := newLogger(cfg)
			if err != nil {
				return err
			}
			closeLogs = closer

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded", "file", config.FindConfigFile(cfgFile))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLogs == nil {
				return nil
			}
			return closeLogs()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), GetConfig(cmd.Context()), GetLogger(cmd.Context()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().Float64("indicator-size", 0, "Gap in cells between a snapped bubble and the edge")
	rootCmd.PersistentFlags().String("label", "", "Text drawn inside the bubble")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (empty string disables logging)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return config.DefaultConfig()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
