package refdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func categoricalTable() Table {
	return Table{
		Columns: []string{"Parameter", "AgeGroup", "Min", "Max"},
		Rows: []Row{
			{"Parameter": "HR", "AgeGroup": "<1 day", "Min": "90", "Max": "160"},
			{"Parameter": "HR", "AgeGroup": "1–7 days", "Min": "100", "Max": "180"},
			{"Parameter": "HR", "AgeGroup": ">7 days", "Min": "110", "Max": "170"},
			{"Parameter": "QRS", "AgeGroup": "All ages", "Min": "30", "Max": "80"},
		},
	}
}

func TestResolverBand_CategoricalAge(t *testing.T) {
	r := NewResolver(categoricalTable(), Overrides{})

	tests := []struct {
		name      string
		parameter string
		ageDays   int
		low, high float64
	}{
		{"first day", "HR", 0, 90, 160},
		{"first week", "HR", 3, 100, 180},
		{"after first week", "HR", 14, 110, 170},
		{"all-ages label", "QRS", 5, 30, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := r.Band(tt.parameter, tt.ageDays)
			assert.Equal(t, tt.low, b.Low)
			assert.Equal(t, tt.high, b.High)
		})
	}
}

func TestResolverBand_ParameterMatchIsLoose(t *testing.T) {
	r := NewResolver(categoricalTable(), Overrides{})
	b := r.Band("  hr ", 3)
	assert.Equal(t, 100.0, b.Low, "case and whitespace ignored")
}

func TestResolverBand_CategoricalFallback(t *testing.T) {
	// No label mentions anything the first-week keywords recognise, so the
	// age filter falls back to every row for the parameter and the first
	// one supplies both bounds.
	table := Table{
		Columns: []string{"Parameter", "AgeGroup", "Min", "Max"},
		Rows: []Row{
			{"Parameter": "PR", "AgeGroup": "term", "Min": "70", "Max": "140"},
			{"Parameter": "PR", "AgeGroup": "preterm", "Min": "80", "Max": "150"},
		},
	}
	r := NewResolver(table, Overrides{})

	b := r.Band("PR", 3)
	assert.Equal(t, 70.0, b.Low)
	assert.Equal(t, 140.0, b.High)
}

func TestResolverBand_NumericAgeBounds(t *testing.T) {
	table := Table{
		Columns: []string{"parameter", "min", "max", "age_min", "age_max"},
		Rows: []Row{
			{"parameter": "QT", "min": "200", "max": "300", "age_min": "0", "age_max": "7"},
			{"parameter": "QT", "min": "220", "max": "320", "age_min": "8", "age_max": "30"},
		},
	}
	r := NewResolver(table, Overrides{Min: "min", Max: "max"})

	t.Run("inclusive bounds", func(t *testing.T) {
		b := r.Band("QT", 7)
		assert.Equal(t, 200.0, b.Low)

		b = r.Band("QT", 8)
		assert.Equal(t, 220.0, b.Low)
	})

	t.Run("age outside every row", func(t *testing.T) {
		b := r.Band("QT", 90)
		assert.True(t, math.IsNaN(b.Low))
		assert.True(t, math.IsNaN(b.High))
	})
}

func TestResolverBand_NonNumericAgeBoundExcludesRow(t *testing.T) {
	table := Table{
		Columns: []string{"parameter", "min", "max", "age_min", "age_max"},
		Rows: []Row{
			{"parameter": "QT", "min": "200", "max": "300", "age_min": "n/a", "age_max": "7"},
			{"parameter": "QT", "min": "220", "max": "320", "age_min": "0", "age_max": "30"},
		},
	}
	r := NewResolver(table, Overrides{Min: "min", Max: "max"})

	b := r.Band("QT", 3)
	assert.Equal(t, 220.0, b.Low, "row with the unparsable bound is skipped")
}

func TestResolverBand_SidesResolveIndependently(t *testing.T) {
	// The first surviving row has a blank max, so the high bound comes
	// from the second row while the low bound comes from the first.
	table := Table{
		Columns: []string{"Parameter", "Min", "Max"},
		Rows: []Row{
			{"Parameter": "HR", "Min": "100", "Max": ""},
			{"Parameter": "HR", "Min": "105", "Max": "180"},
		},
	}
	r := NewResolver(table, Overrides{})

	b := r.Band("HR", 1)
	assert.Equal(t, 100.0, b.Low)
	assert.Equal(t, 180.0, b.High)
}

func TestResolverBand_MissingRoles(t *testing.T) {
	t.Run("no parameter column scans every row", func(t *testing.T) {
		table := Table{
			Columns: []string{"Min", "Max"},
			Rows:    []Row{{"Min": "50", "Max": "120"}},
		}
		b := NewResolver(table, Overrides{}).Band("HR", 1)
		assert.Equal(t, 50.0, b.Low)
		assert.Equal(t, 120.0, b.High)
	})

	t.Run("no bound columns yields unknown band", func(t *testing.T) {
		table := Table{
			Columns: []string{"Parameter", "Note"},
			Rows:    []Row{{"Parameter": "HR", "Note": "see chart"}},
		}
		b := NewResolver(table, Overrides{}).Band("HR", 1)
		assert.True(t, math.IsNaN(b.Low))
		assert.True(t, math.IsNaN(b.High))
	})
}

func TestResolverBand_EmptyTable(t *testing.T) {
	b := NewResolver(Table{}, Overrides{}).Band("HR", 1)
	assert.True(t, math.IsNaN(b.Low))
	assert.True(t, math.IsNaN(b.High))
}

func TestResolverBand_UnknownParameter(t *testing.T) {
	b := NewResolver(categoricalTable(), Overrides{}).Band("JT", 1)
	assert.True(t, math.IsNaN(b.Low))
	assert.True(t, math.IsNaN(b.High))
}

func TestAgeGroupMatches(t *testing.T) {
	tests := []struct {
		label   string
		ageDays int
		want    bool
	}{
		{"All ages", 0, true},
		{"<1 day", 0, true},
		{"0-1 days", 0, true},
		{"1–7 days", 3, true},
		{"1-7 days", 3, true},
		{"first week", 7, true},
		{">7 days", 14, true},
		{"1 month", 20, true},
		{"<1 day", 3, false},
		{">7 days", 3, true}, // the bare "7" keyword is that loose
		{"1–7 days", 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ageGroupMatches(tt.label, tt.ageDays), "age=%d", tt.ageDays)
		})
	}
}
