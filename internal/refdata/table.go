package refdata

import (
	"strconv"
	"strings"

	"github.com/neoecg/neoecg/internal/units"
)

// Table is a loosely structured tabular dataset. Cell values are kept as
// raw text; numeric coercion happens at lookup time so that a stray
// non-numeric cell degrades only the lookup that touches it.
//
// Columns preserves header scan order, which matters: role detection takes
// the first matching column per role.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Row maps column name to cell text.
type Row map[string]string

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Band is an age-appropriate (low, high) reference band. Either side may be
// undefined (NaN) independently of the other.
type Band struct {
	Low  float64
	High float64
}

// UnknownBand returns a band with both sides undefined.
func UnknownBand() Band {
	return Band{Low: units.Undefined(), High: units.Undefined()}
}

// MarshalJSON encodes undefined sides as null.
func (b Band) MarshalJSON() ([]byte, error) {
	side := func(v float64) string {
		if !units.Defined(v) {
			return "null"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return []byte(`{"low":` + side(b.Low) + `,"high":` + side(b.High) + `}`), nil
}

// parseNumber coerces cell text to a float. Undefined (NaN) when the cell
// is empty or not numeric.
func parseNumber(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return units.Undefined()
	}
	return v
}
