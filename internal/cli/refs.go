package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/render"
	"github.com/neoecg/neoecg/internal/units"
)

// RefsCmdOptions holds flags shared by the refs subcommands.
type RefsCmdOptions struct {
	*RootOptions
	RefsOptions
}

// NewRefsCommand creates the refs command group for inspecting the loaded
// reference data.
func NewRefsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RefsCmdOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "refs",
		Short: "Inspect the reference data tables",
	}

	cmd.PersistentFlags().StringVar(&opts.Refs, "refs", "", "reference data file (.csv, .yaml, .sqlite)")
	cmd.PersistentFlags().StringVar(&opts.AxisRefs, "axis-refs", "", "axis-matrix CSV (with --refs *.csv)")
	cmd.PersistentFlags().StringVar(&opts.RefsTable, "refs-table", "", "measurement table name (with --refs *.sqlite)")
	cmd.PersistentFlags().StringVar(&opts.AxisTable, "axis-table", "", "axis table name (with --refs *.sqlite)")

	cmd.AddCommand(newRefsShowCommand(opts))
	cmd.AddCommand(newRefsAxisCommand(opts))
	cmd.AddCommand(newRefsResolveCommand(opts))

	return cmd
}

// loadTables loads both reference tables through the configured provider.
func loadTables(opts *RefsCmdOptions) (measurements, axisMatrix refdata.Table, err error) {
	provider, err := NewProvider(opts.RefsOptions)
	if err != nil {
		return refdata.Table{}, refdata.Table{}, WrapExitError(ExitCommandError, "reference data", err)
	}
	measurements, axisMatrix = refdata.Load(provider)
	return measurements, axisMatrix, nil
}

func newRefsShowCommand(opts *RefsCmdOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the measurement reference table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			measurements, _, err := loadTables(opts)
			if err != nil {
				return err
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.SuccessJSON(measurements)
			}

			fmt.Fprint(cmd.OutOrStdout(), render.RefTable(measurements))
			if params := render.Parameters(measurements, refdata.Overrides{}); len(params) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nParameters: %s\n", strings.Join(params, ", "))
			}
			return nil
		},
	}
}

func newRefsAxisCommand(opts *RefsCmdOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "axis",
		Short:         "Print the axis-matrix reference table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, axisMatrix, err := loadTables(opts)
			if err != nil {
				return err
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.SuccessJSON(axisMatrix)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.RefTable(axisMatrix))
			return nil
		},
	}
}

func newRefsResolveCommand(opts *RefsCmdOptions) *cobra.Command {
	var ageDays int

	cmd := &cobra.Command{
		Use:           "resolve <parameter>",
		Short:         "Show the reference band resolved for a parameter and age",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			measurements, _, err := loadTables(opts)
			if err != nil {
				return err
			}

			cfg, err := loadSettings(opts.RootOptions)
			if err != nil {
				return err
			}

			f := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			roles := refdata.ResolveRoles(measurements.Columns, cfg.Columns)
			f.VerboseLog("column roles: parameter=%q min=%q max=%q age_group=%q age_min=%q age_max=%q",
				roles.Parameter, roles.Min, roles.Max, roles.AgeGroup, roles.AgeMin, roles.AgeMax)

			parameter := args[0]
			band := refdata.NewResolver(measurements, cfg.Columns).Band(parameter, ageDays)

			if opts.Format == "json" {
				return f.SuccessJSON(struct {
					Parameter string       `json:"parameter"`
					AgeDays   int          `json:"age_days"`
					Band      refdata.Band `json:"band"`
				}{parameter, ageDays, band})
			}

			display := render.FormatBand(band)
			if !units.Defined(band.Low) && !units.Defined(band.High) {
				display = "unknown (no matching reference row)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at %d days: %s\n", parameter, ageDays, display)
			return nil
		},
	}

	cmd.Flags().IntVar(&ageDays, "age", 1, "postnatal age in days (0-30)")

	return cmd
}
