// Package qtc derives heart-rate-corrected QT intervals.
//
// Two standard corrections are implemented, differing only in the exponent
// applied to the RR interval: Bazett divides by the square root of RR and
// Fridericia by its cube root. Both are undefined (NaN) whenever the RR
// interval is undefined or non-positive.
package qtc

import (
	"math"

	"github.com/neoecg/neoecg/internal/units"
)

// Fixed neonatal prolongation thresholds in milliseconds. These are clinical
// constants, deliberately not sourced from the reference table, and neither
// correction carries a lower bound.
const (
	BazettHighMs     = 480.0
	FridericiaHighMs = 460.0
)

// Thresholds holds the QTc prolongation cutoffs. Configurable so sites with
// local policy can tighten them; defaults match the neonatal constants.
type Thresholds struct {
	BazettHighMs     float64
	FridericiaHighMs float64
}

// DefaultThresholds returns the standard neonatal cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{BazettHighMs: BazettHighMs, FridericiaHighMs: FridericiaHighMs}
}

// RRSeconds derives the R-R interval in seconds from a heart rate in bpm.
// Undefined (NaN) when the heart rate is undefined or non-positive.
func RRSeconds(hrBpm float64) float64 {
	if !(hrBpm > 0) {
		return units.Undefined()
	}
	return 60000.0 / hrBpm / 1000.0
}

// Bazett computes QT / sqrt(RR). Undefined when RR is undefined or <= 0.
func Bazett(qtMs, rrSeconds float64) float64 {
	if !(rrSeconds > 0) {
		return units.Undefined()
	}
	return qtMs / math.Sqrt(rrSeconds)
}

// Fridericia computes QT / RR^(1/3). Undefined when RR is undefined or <= 0.
func Fridericia(qtMs, rrSeconds float64) float64 {
	if !(rrSeconds > 0) {
		return units.Undefined()
	}
	return qtMs / math.Cbrt(rrSeconds)
}
