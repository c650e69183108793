package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/neoecg/neoecg/internal/axis"
	"github.com/neoecg/neoecg/internal/engine"
	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/render"
)

// Soft input bounds from the bedside form. Values outside them produce a
// warning, never a refusal: the engine degrades gracefully on any input.
const (
	maxAgeDays       = 30
	maxHRBoxes       = 50.0
	maxIntervalBoxes = 20.0
)

// EvaluateOptions holds flags for the evaluate command.
type EvaluateOptions struct {
	*RootOptions
	RefsOptions

	AgeDays  int
	HRBoxes  float64
	PRBoxes  float64
	QRSBoxes float64
	QTBoxes  float64

	LeadI   bool
	LeadII  bool
	LeadAVF bool
	LeadV1  bool
	LeadV6  bool

	Comment string
	PDFPath string
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Convert measurements and produce a classified report",
		Long: `Convert grid-box counts into clinical intervals, classify them against
the loaded reference ranges, and print the full report.

Example:
  neoecg evaluate --age 1 --hr-boxes 5 --pr-boxes 3 --qrs-boxes 1.5 \
    --qt-boxes 8 --lead-i=false --refs ranges.csv --pdf report.pdf`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.AgeDays, "age", 1, "postnatal age in days (0-30)")
	cmd.Flags().Float64Var(&opts.HRBoxes, "hr-boxes", 5.0, "small boxes between two R peaks")
	cmd.Flags().Float64Var(&opts.PRBoxes, "pr-boxes", 3.0, "PR interval in small boxes")
	cmd.Flags().Float64Var(&opts.QRSBoxes, "qrs-boxes", 1.5, "QRS duration in small boxes")
	cmd.Flags().Float64Var(&opts.QTBoxes, "qt-boxes", 8.0, "QT interval in small boxes")

	cmd.Flags().BoolVar(&opts.LeadI, "lead-i", true, "QRS upright (positive) in lead I")
	cmd.Flags().BoolVar(&opts.LeadII, "lead-ii", true, "QRS upright (positive) in lead II")
	cmd.Flags().BoolVar(&opts.LeadAVF, "lead-avf", true, "QRS upright (positive) in aVF")
	cmd.Flags().BoolVar(&opts.LeadV1, "lead-v1", true, "QRS upright (positive) in V1")
	cmd.Flags().BoolVar(&opts.LeadV6, "lead-v6", true, "QRS upright (positive) in V6")

	cmd.Flags().StringVar(&opts.Comment, "comment", "", "clinical context (free text)")
	cmd.Flags().StringVar(&opts.PDFPath, "pdf", "", "also export the report as a PDF to this path")

	cmd.Flags().StringVar(&opts.Refs, "refs", "", "reference data file (.csv, .yaml, .sqlite)")
	cmd.Flags().StringVar(&opts.AxisRefs, "axis-refs", "", "axis-matrix CSV (with --refs *.csv)")
	cmd.Flags().StringVar(&opts.RefsTable, "refs-table", "", "measurement table name (with --refs *.sqlite)")
	cmd.Flags().StringVar(&opts.AxisTable, "axis-table", "", "axis table name (with --refs *.sqlite)")

	return cmd
}

func runEvaluate(opts *EvaluateOptions, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	for _, w := range inputWarnings(opts) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	cfg, err := loadSettings(opts.RootOptions)
	if err != nil {
		return err
	}

	provider, err := NewProvider(opts.RefsOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "reference data", err)
	}
	measurements, axisMatrix := refdata.Load(provider)
	f.VerboseLog("reference rows loaded: %d measurement, %d axis", len(measurements.Rows), len(axisMatrix.Rows))

	eng := engine.New(measurements, axisMatrix, cfg)
	report := eng.Evaluate(engine.Input{
		AgeDays:  opts.AgeDays,
		HRBoxes:  opts.HRBoxes,
		PRBoxes:  opts.PRBoxes,
		QRSBoxes: opts.QRSBoxes,
		QTBoxes:  opts.QTBoxes,
		Leads: axis.Leads{
			I:   opts.LeadI,
			II:  opts.LeadII,
			AVF: opts.LeadAVF,
			V1:  opts.LeadV1,
			V6:  opts.LeadV6,
		},
		Comment: opts.Comment,
	})

	if opts.PDFPath != "" {
		if err := render.SavePDF(report, time.Now(), opts.PDFPath); err != nil {
			return WrapExitError(ExitCommandError, "export pdf", err)
		}
		f.VerboseLog("pdf written: %s", opts.PDFPath)
	}

	if opts.Format == "json" {
		return f.SuccessJSON(report)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), render.Text(report))
	return err
}

// inputWarnings reports soft-bound violations on the bedside inputs. These
// are advisory only; the engine accepts any value and propagates undefined
// results instead of crashing.
func inputWarnings(opts *EvaluateOptions) []string {
	var warnings []string
	if opts.AgeDays < 0 || opts.AgeDays > maxAgeDays {
		warnings = append(warnings, fmt.Sprintf("age %d days is outside 0-%d; reference lookup may not apply", opts.AgeDays, maxAgeDays))
	}
	if !(opts.HRBoxes > 0) || opts.HRBoxes > maxHRBoxes {
		warnings = append(warnings, fmt.Sprintf("hr-boxes %g is outside (0, %g]; heart rate will be undefined or unreliable", opts.HRBoxes, maxHRBoxes))
	}
	for _, iv := range []struct {
		name  string
		boxes float64
	}{
		{"pr-boxes", opts.PRBoxes},
		{"qrs-boxes", opts.QRSBoxes},
		{"qt-boxes", opts.QTBoxes},
	} {
		if !(iv.boxes > 0) || iv.boxes > maxIntervalBoxes {
			warnings = append(warnings, fmt.Sprintf("%s %g is outside (0, %g]", iv.name, iv.boxes, maxIntervalBoxes))
		}
	}
	return warnings
}
