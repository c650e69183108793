package engine

import (
	"encoding/json"

	"github.com/neoecg/neoecg/internal/axis"
	"github.com/neoecg/neoecg/internal/refdata"
	"github.com/neoecg/neoecg/internal/units"
)

// InputKind says what a row's raw input holds.
type InputKind int

const (
	// InputNone marks derived rows (QTc) that have no direct raw input.
	InputNone InputKind = iota
	// InputDays marks the age row.
	InputDays
	// InputBoxes marks rows measured as grid-box counts.
	InputBoxes
)

// Row is one line of the report: a measure with its raw input, converted
// value, resolved reference band, and classification. Values stay numeric
// here; display formatting is the render layer's concern.
type Row struct {
	Label      string
	InputKind  InputKind
	InputValue float64 // NaN when InputKind is InputNone
	Value      float64 // converted or derived value, NaN when undefined
	Unit       string  // "bpm" or "ms"; empty for the age row
	Band       refdata.Band
	Status     Status
}

// MarshalJSON encodes undefined numerics as null so the report serializes
// with encoding/json despite NaN sentinels.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label     string       `json:"label"`
		Input     *float64     `json:"input"`
		InputUnit string       `json:"input_unit,omitempty"`
		Value     *float64     `json:"value"`
		Unit      string       `json:"unit,omitempty"`
		Reference refdata.Band `json:"reference"`
		Status    Status       `json:"status"`
	}{
		Label:     r.Label,
		Input:     optional(r.InputValue),
		InputUnit: r.inputUnit(),
		Value:     optional(r.Value),
		Unit:      r.Unit,
		Reference: r.Band,
		Status:    r.Status,
	})
}

func (r Row) inputUnit() string {
	switch r.InputKind {
	case InputBoxes:
		return "boxes"
	case InputDays:
		return "days"
	default:
		return ""
	}
}

func optional(v float64) *float64 {
	if !units.Defined(v) {
		return nil
	}
	return &v
}

// AlertLevel grades an alert for presentation.
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// Alert is a structured flag raised by the engine for out-of-band findings.
// Alerts duplicate information already present in the rows; they exist so
// presentation layers can surface the notable findings without re-deriving
// them.
type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}

// Report is the terminal output of one engine invocation: a fixed-order
// row sequence, the axis result, alerts, and the pass-through comment.
// No row is ever conditionally omitted.
type Report struct {
	ID      string      `json:"id"`
	AgeDays int         `json:"age_days"`
	Rows    []Row       `json:"rows"`
	Axis    axis.Result `json:"axis"`
	Alerts  []Alert     `json:"alerts,omitempty"`
	Comment string      `json:"comment,omitempty"`
}
