package refdata

import (
	"strings"

	"github.com/neoecg/neoecg/internal/units"
)

// Resolver answers reference-band queries against a measurement table.
// The table is read-only after construction, so a single Resolver may be
// shared by concurrent evaluations.
type Resolver struct {
	table     Table
	overrides Overrides
}

// NewResolver wraps a measurement table. Overrides pin exact column names
// for known schemas; zero-value overrides mean fully heuristic detection.
func NewResolver(t Table, ov Overrides) *Resolver {
	return &Resolver{table: t, overrides: ov}
}

// Band resolves the (low, high) reference band for a parameter at the given
// age in days. Degrades stage by stage: an unidentifiable column role skips
// its filter, and no match at any stage yields an unknown band, never an
// error.
func (r *Resolver) Band(parameter string, ageDays int) Band {
	if r.table.Empty() {
		return UnknownBand()
	}

	roles := ResolveRoles(r.table.Columns, r.overrides)

	rows := r.table.Rows
	if roles.Parameter != "" {
		rows = filterParameter(rows, roles.Parameter, parameter)
	}
	rows = filterAge(rows, roles, ageDays)

	band := UnknownBand()
	if roles.Min != "" {
		band.Low = firstNumeric(rows, roles.Min)
	}
	if roles.Max != "" {
		band.High = firstNumeric(rows, roles.Max)
	}
	return band
}

// filterParameter keeps rows whose parameter cell equals the requested name,
// case-insensitively and ignoring surrounding whitespace.
func filterParameter(rows []Row, col, parameter string) []Row {
	want := strings.ToLower(strings.TrimSpace(parameter))
	var out []Row
	for _, row := range rows {
		if strings.ToLower(strings.TrimSpace(row[col])) == want {
			out = append(out, row)
		}
	}
	return out
}

// filterAge applies whichever age filter the schema supports. Numeric bound
// columns take precedence over a categorical age-group column; with neither,
// rows pass through unfiltered.
func filterAge(rows []Row, roles Roles, ageDays int) []Row {
	switch {
	case roles.AgeMin != "" && roles.AgeMax != "":
		var out []Row
		for _, row := range rows {
			lo := parseNumber(row[roles.AgeMin])
			hi := parseNumber(row[roles.AgeMax])
			// Non-numeric bounds coerce to NaN, which fails both
			// comparisons and so excludes the row.
			if lo <= float64(ageDays) && float64(ageDays) <= hi {
				out = append(out, row)
			}
		}
		return out

	case roles.AgeGroup != "":
		var out []Row
		for _, row := range rows {
			if ageGroupMatches(row[roles.AgeGroup], ageDays) {
				out = append(out, row)
			}
		}
		// No label matched: fall back to the parameter-filtered rows
		// rather than an empty set, so odd labels degrade gracefully.
		if len(out) == 0 {
			return rows
		}
		return out

	default:
		return rows
	}
}

// firstNumeric returns the first numeric-coercible cell in the column,
// scanning rows in order. Non-numeric cells are skipped, so low and high
// may come from different rows; each side resolves independently.
func firstNumeric(rows []Row, col string) float64 {
	for _, row := range rows {
		if v := parseNumber(row[col]); units.Defined(v) {
			return v
		}
	}
	return units.Undefined()
}
