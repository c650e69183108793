// Package axis infers the cardiac electrical axis from lead polarities.
//
// The classification is a deterministic decision table over the three limb
// leads I, II and aVF; the precordial leads V1 and V6 contribute only an
// independent pattern hint. Every one of the eight limb-lead combinations
// maps to exactly one category.
package axis

import "strings"

// Leads holds the yes/no polarity answers, true meaning the QRS complex is
// upright (positive) in that lead.
type Leads struct {
	I   bool
	II  bool
	AVF bool
	V1  bool
	V6  bool
}

// Category is the axis classification derived from the limb leads.
type Category int

const (
	Indeterminate Category = iota
	Normal
	RightDeviation
	LeftDeviation
	ExtremeDeviation
)

// String returns the clinical display text for the category.
func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal axis"
	case RightDeviation:
		return "Right axis deviation"
	case LeftDeviation:
		return "Left axis deviation"
	case ExtremeDeviation:
		return "Extreme axis deviation"
	default:
		return "Indeterminate / borderline axis (consider manual angle measurement)"
	}
}

// MarshalJSON encodes the category as its clinical display text.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Result is the structured outcome of axis classification. Hint and note
// are empty when not applicable; Display joins the populated fields.
type Result struct {
	Category          Category `json:"category"`
	PrecordialHint    string   `json:"precordial_hint,omitempty"`
	PhysiologicalNote string   `json:"physiological_note,omitempty"`
}

// Classify maps limb-lead polarities to an axis category and attaches the
// precordial hint and the first-week physiological note where they apply.
//
// Decision table over (I, II, aVF):
//
//	+ + +  Normal
//	- + +  Right deviation
//	+ - -  Left deviation
//	- - -  Extreme deviation
//	other  Indeterminate / borderline
func Classify(l Leads, ageDays int) Result {
	var cat Category
	switch {
	case l.I && l.II && l.AVF:
		cat = Normal
	case !l.I && l.II && l.AVF:
		cat = RightDeviation
	case l.I && !l.II && !l.AVF:
		cat = LeftDeviation
	case !l.I && !l.II && !l.AVF:
		cat = ExtremeDeviation
	default:
		cat = Indeterminate
	}

	r := Result{Category: cat}

	// Precordial hint is independent of the limb-lead table. Both leads
	// positive, both negative, or any mixed remainder yields no hint.
	switch {
	case l.V1 && !l.V6:
		r.PrecordialHint = "Rightward precordial pattern (V1 positive, V6 not)"
	case !l.V1 && l.V6:
		r.PrecordialHint = "Leftward precordial pattern (V6 positive, V1 not)"
	}

	// Rightward axis is expected physiology in the first week of life.
	if cat == RightDeviation && ageDays <= 7 {
		r.PhysiologicalNote = "Rightward axis may be physiological in the first week of life."
	}

	return r
}

// Display joins the category with any hint and note into a single line for
// presentation layers that want the flat form.
func (r Result) Display() string {
	parts := make([]string, 0, 2)
	if r.PrecordialHint != "" {
		parts = append(parts, r.PrecordialHint)
	}
	if r.PhysiologicalNote != "" {
		parts = append(parts, r.PhysiologicalNote)
	}
	if len(parts) == 0 {
		return r.Category.String()
	}
	return r.Category.String() + " — " + strings.Join(parts, " | ")
}
