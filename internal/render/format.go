package render

import (
	"strconv"

	"github.com/neoecg/neoecg/internal/engine"
	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/units"
)

// Placeholder rendered for undefined values, unknown bands, and the
// unclassified age row.
const Placeholder = "—"

// Disclaimer is the fixed text every exported report must carry.
const Disclaimer = "This tool provides educational decision-support only. " +
	"ECG findings must be reviewed by a qualified clinician."

// formatNumber prints a float the short way: no trailing zeros, no
// exponent for clinical magnitudes.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatValue renders a converted value with its unit, or the placeholder
// when undefined.
func FormatValue(v float64, unit string) string {
	if !units.Defined(v) {
		return Placeholder
	}
	if unit == "" {
		return formatNumber(v)
	}
	return formatNumber(v) + " " + unit
}

// FormatInput renders a row's raw input column.
func FormatInput(r engine.Row) string {
	switch r.InputKind {
	case engine.InputBoxes:
		return formatNumber(r.InputValue) + " boxes"
	case engine.InputDays:
		return formatNumber(r.InputValue)
	default:
		return Placeholder
	}
}

// FormatBand renders a reference band as "low–high", or the placeholder
// when either side is undefined.
func FormatBand(b refdata.Band) string {
	if !units.Defined(b.Low) || !units.Defined(b.High) {
		return Placeholder
	}
	return formatNumber(b.Low) + "–" + formatNumber(b.High)
}

// FormatStatus renders a classification status; Unknown displays as the
// placeholder, matching the undefined values it accompanies.
func FormatStatus(s engine.Status) string {
	if s == engine.StatusUnknown {
		return Placeholder
	}
	return string(s)
}
