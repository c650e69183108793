package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/neoecg/neoecg/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // optional CUE settings file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the neoecg CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "neoecg",
		Short: "Neonatal ECG decision-support assistant",
		Long: `Bedside interpretation aid for neonatal ECG measurements.

Converts grid-box counts into clinical intervals, derives corrected QT
values, classifies each value against age-appropriate reference ranges,
and determines the cardiac electrical axis from a lead-polarity
questionnaire. Decision support only; findings require clinician review.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "CUE settings file (calibration, thresholds, column roles)")

	// Subcommands
	cmd.AddCommand(NewEvaluateCommand(opts))
	cmd.AddCommand(NewRefsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// configureLogging routes slog to stderr, raising the level to Debug in
// verbose mode. Stdout stays clean for report output.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSettings resolves the engine configuration from the --config flag,
// falling back to defaults when none is given.
func loadSettings(opts *RootOptions) (config.Config, error) {
	if opts.Config == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "load settings", err)
	}
	return cfg, nil
}
