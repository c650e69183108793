package units

import "math"

// Calibration constants for standard ECG paper at 25 mm/s.
const (
	// MsPerBox is the duration of one small grid box in milliseconds.
	MsPerBox = 40.0
	// BpmNumerator is the dividend of the 1500 rule: HR = 1500 / boxes.
	BpmNumerator = 1500.0
)

// Calibration holds the paper-speed constants used for conversion.
// The zero value is not useful; construct via Default and override fields
// from configuration when non-standard paper speed is in play.
type Calibration struct {
	MsPerBox     float64
	BpmNumerator float64
}

// Default returns the standard 25 mm/s calibration.
func Default() Calibration {
	return Calibration{MsPerBox: MsPerBox, BpmNumerator: BpmNumerator}
}

// ToMs converts a small-box count to milliseconds. Defined for every input,
// including zero and negative counts; NaN propagates.
func (c Calibration) ToMs(boxes float64) float64 {
	return boxes * c.MsPerBox
}

// ToBpm converts the small-box count between two R peaks to beats per
// minute. Undefined (NaN) for counts that are zero, negative, or NaN,
// since the conversion divides by the count.
func (c Calibration) ToBpm(boxes float64) float64 {
	if !(boxes > 0) {
		return Undefined()
	}
	return c.BpmNumerator / boxes
}

// ToMs converts a small-box count to milliseconds at standard calibration.
func ToMs(boxes float64) float64 { return Default().ToMs(boxes) }

// ToBpm converts an R-R small-box count to bpm at standard calibration.
func ToBpm(boxes float64) float64 { return Default().ToBpm(boxes) }

// Undefined returns the NaN sentinel used for values that cannot be derived.
func Undefined() float64 { return math.NaN() }

// Defined reports whether v carries a usable value (is not NaN).
func Defined(v float64) bool { return !math.IsNaN(v) }

// Round1 rounds to one decimal place for display. NaN passes through.
func Round1(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Round(v*10) / 10
}
