package engine

import (
	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/units"
)

// Status classifies a derived value against its reference band.
type Status string

const (
	StatusLow     Status = "Low"
	StatusNormal  Status = "Normal"
	StatusHigh    Status = "High"
	StatusUnknown Status = "Unknown"
)

// Classify compares a value against a reference band.
//
// Unknown when the value is undefined (NaN) or when neither bound could be
// resolved: an absent reference range under-informs, it never vouches for
// the value. The two bounds are otherwise checked independently, so a value
// may classify Normal with only one bound known.
func Classify(value float64, band refdata.Band) Status {
	if !units.Defined(value) {
		return StatusUnknown
	}
	if !units.Defined(band.Low) && !units.Defined(band.High) {
		return StatusUnknown
	}
	if units.Defined(band.Low) && value < band.Low {
		return StatusLow
	}
	if units.Defined(band.High) && value > band.High {
		return StatusHigh
	}
	return StatusNormal
}
