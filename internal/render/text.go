package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/neoecg/neoecg/internal/engine"
)

// Column widths (in runes) for the five-column summary table. Each width
// includes its gutter; the status column is written unpadded.
var summaryWidths = [4]int{22, 14, 16, 14}

var summaryHeader = [5]string{"Measure", "Input", "Converted", "Reference", "Status"}

// Text renders a report as a fixed-width terminal table followed by the
// axis line, alerts, the optional comment, and the disclaimer.
func Text(r *engine.Report) string {
	var b strings.Builder

	b.WriteString("Neonatal ECG Summary\n")
	b.WriteString("Report ID: " + r.ID + "\n\n")

	writeLine(&b, summaryHeader)
	for _, row := range r.Rows {
		writeLine(&b, [5]string{
			row.Label,
			FormatInput(row),
			FormatValue(row.Value, row.Unit),
			FormatBand(row.Band),
			FormatStatus(row.Status),
		})
	}

	b.WriteString("\nAxis: " + r.Axis.Display() + "\n")

	if len(r.Alerts) > 0 {
		b.WriteString("\nAlerts:\n")
		for _, a := range r.Alerts {
			fmt.Fprintf(&b, "  [%s] %s\n", a.Level, a.Message)
		}
	}

	if r.Comment != "" {
		b.WriteString("\nComments: " + r.Comment + "\n")
	}

	b.WriteString("\n" + Disclaimer + "\n")
	return b.String()
}

// writeLine pads the first four cells to their column widths and writes the
// status cell as-is, trimming trailing space.
func writeLine(b *strings.Builder, cells [5]string) {
	var line strings.Builder
	for i, w := range summaryWidths {
		fmt.Fprintf(&line, "%-*s", w, Truncate(cells[i], w))
	}
	line.WriteString(cells[4])
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteByte('\n')
}

// Truncate cuts a cell to max runes, replacing the tail with an ellipsis
// instead of wrapping.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
