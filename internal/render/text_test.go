package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/neoecg/neoecg/internal/axis"
	"github.com/neoecg/neoecg/internal/config"
	"github.com/neoecg/neoecg/internal/engine"
	"github.com/neoecg/neoecg/internal/refdata"
)

func neonatalTable() refdata.Table {
	return refdata.Table{
		Columns: []string{"Parameter", "AgeGroup", "Min", "Max"},
		Rows: []refdata.Row{
			{"Parameter": "HR", "AgeGroup": "1–7 days", "Min": "100", "Max": "180"},
			{"Parameter": "PR", "AgeGroup": "All ages", "Min": "70", "Max": "140"},
			{"Parameter": "QRS", "AgeGroup": "All ages", "Min": "30", "Max": "80"},
			{"Parameter": "QT", "AgeGroup": "All ages", "Min": "200", "Max": "300"},
		},
	}
}

func evaluateFixture(t *testing.T, measurements refdata.Table, in engine.Input) *engine.Report {
	t.Helper()
	e := engine.New(measurements, refdata.Table{}, config.Default(),
		engine.WithIDGenerator(engine.FixedGenerator{ID: "golden-report"}))
	return e.Evaluate(in)
}

func TestText_Summary(t *testing.T) {
	r := evaluateFixture(t, neonatalTable(), engine.Input{
		AgeDays:  1,
		HRBoxes:  5,
		PRBoxes:  3,
		QRSBoxes: 1.5,
		QTBoxes:  8,
		Leads:    axis.Leads{I: true, II: true, AVF: true, V1: true, V6: true},
		Comment:  "Feeding well",
	})

	g := goldie.New(t)
	g.Assert(t, "report_summary", []byte(Text(r)))
}

func TestText_Degraded(t *testing.T) {
	// No reference data, unmeasurable heart rate, and a lone positive V6.
	r := evaluateFixture(t, refdata.Table{}, engine.Input{
		AgeDays: 10,
		Leads:   axis.Leads{V6: true},
	})

	g := goldie.New(t)
	g.Assert(t, "report_degraded", []byte(Text(r)))
}

func TestText_AlwaysCarriesDisclaimer(t *testing.T) {
	r := evaluateFixture(t, refdata.Table{}, engine.Input{AgeDays: 1})
	assert.Contains(t, Text(r), Disclaimer)
}

func TestText_OmitsEmptySections(t *testing.T) {
	r := evaluateFixture(t, refdata.Table{}, engine.Input{
		AgeDays: 1,
		HRBoxes: 12,
		Leads:   axis.Leads{I: true, II: true, AVF: true},
	})

	out := Text(r)
	assert.NotContains(t, out, "Alerts:")
	assert.NotContains(t, out, "Comments:")
}
