package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/neoecg/neoecg/internal/refdata"
)

// refColMax caps a reference-viewer column width.
const refColMax = 24

// RefTable renders a loose reference table for terminal viewing. Column
// widths fit the widest cell up to a cap; order follows the table's scan
// order.
func RefTable(t refdata.Table) string {
	if len(t.Columns) == 0 {
		return "(no reference data)\n"
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = utf8.RuneCountInString(col)
		for _, row := range t.Rows {
			if n := utf8.RuneCountInString(row[col]); n > widths[i] {
				widths[i] = n
			}
		}
		if widths[i] > refColMax {
			widths[i] = refColMax
		}
	}

	var b strings.Builder
	writeRefLine := func(cells []string) {
		var line strings.Builder
		for i, w := range widths {
			if i == len(widths)-1 {
				line.WriteString(Truncate(cells[i], w))
				break
			}
			fmt.Fprintf(&line, "%-*s  ", w, Truncate(cells[i], w))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	writeRefLine(t.Columns)
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = row[col]
		}
		writeRefLine(cells)
	}
	return b.String()
}

// Parameters lists the distinct parameter names in the table, sorted with
// English collation for stable display. Nil when no parameter column is
// identifiable.
func Parameters(t refdata.Table, ov refdata.Overrides) []string {
	roles := refdata.ResolveRoles(t.Columns, ov)
	if roles.Parameter == "" {
		return nil
	}

	seen := make(map[string]bool)
	var params []string
	for _, row := range t.Rows {
		p := strings.TrimSpace(row[roles.Parameter])
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if !seen[key] {
			seen[key] = true
			params = append(params, p)
		}
	}

	collate.New(language.English).SortStrings(params)
	return params
}
