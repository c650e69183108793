package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/neoecg/neoecg/internal/refdata"
)

// RefsOptions selects and parameterizes the reference data provider.
type RefsOptions struct {
	Refs      string // path to the measurement reference file/database
	AxisRefs  string // optional axis-matrix CSV (CSV provider only)
	RefsTable string // measurement table name (SQLite provider only)
	AxisTable string // axis table name (SQLite provider only)
}

// NewProvider picks a reference data provider from the file extension:
// .csv, .yaml/.yml, or .db/.sqlite/.sqlite3. Returns nil when no reference
// path is configured; the engine then degrades every lookup to Unknown.
func NewProvider(opts RefsOptions) (refdata.Provider, error) {
	if opts.Refs == "" {
		return nil, nil
	}

	switch strings.ToLower(filepath.Ext(opts.Refs)) {
	case ".csv":
		return refdata.CSVProvider{
			MeasurementPath: opts.Refs,
			AxisPath:        opts.AxisRefs,
		}, nil

	case ".yaml", ".yml":
		return refdata.YAMLProvider{Path: opts.Refs}, nil

	case ".db", ".sqlite", ".sqlite3":
		return refdata.SQLiteProvider{
			Path:             opts.Refs,
			MeasurementTable: opts.RefsTable,
			AxisTable:        opts.AxisTable,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported reference data format %q (want .csv, .yaml, or .sqlite)", filepath.Ext(opts.Refs))
	}
}
