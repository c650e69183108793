package refdata

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVProvider reads reference tables from CSV files. The first record is
// the header row; short records simply leave the trailing columns unset.
// AxisPath is optional since many sites only carry the measurement table.
type CSVProvider struct {
	MeasurementPath string
	AxisPath        string
}

// Load implements Provider.
func (p CSVProvider) Load() (Table, Table, error) {
	m, err := readCSV(p.MeasurementPath)
	if err != nil {
		return Table{}, Table{}, fmt.Errorf("measurement table: %w", err)
	}

	var a Table
	if p.AxisPath != "" {
		a, err = readCSV(p.AxisPath)
		if err != nil {
			return Table{}, Table{}, fmt.Errorf("axis table: %w", err)
		}
	}

	return m, a, nil
}

func readCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	t := Table{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
