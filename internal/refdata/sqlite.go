package refdata

import (
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"

	_ "github.com/mattn/go-sqlite3"
)

// Default table names for SQLite reference packs.
const (
	DefaultMeasurementTable = "reference"
	DefaultAxisTable        = "axis_matrix"
)

// SQLiteProvider reads reference tables from a SQLite database. Column
// names come straight from the result set, so heuristic role detection
// applies to database schemas exactly as it does to flat files.
//
// The database is opened read-only for the lifetime of one Load call; the
// engine never writes reference data.
type SQLiteProvider struct {
	Path             string
	MeasurementTable string // defaults to DefaultMeasurementTable
	AxisTable        string // defaults to DefaultAxisTable
}

// identPattern restricts table names to plain identifiers. Table names
// cannot be bound as query parameters, so anything else is rejected before
// it reaches SQL.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load implements Provider. A missing or unreadable axis table degrades to
// an empty table with a warning; only measurement-table failures are
// reported as errors.
func (p SQLiteProvider) Load() (Table, Table, error) {
	db, err := openReadOnly(p.Path)
	if err != nil {
		return Table{}, Table{}, err
	}
	defer db.Close()

	measurementTable := p.MeasurementTable
	if measurementTable == "" {
		measurementTable = DefaultMeasurementTable
	}
	axisTable := p.AxisTable
	if axisTable == "" {
		axisTable = DefaultAxisTable
	}

	m, err := readSQLTable(db, measurementTable)
	if err != nil {
		return Table{}, Table{}, fmt.Errorf("measurement table %q: %w", measurementTable, err)
	}

	a, err := readSQLTable(db, axisTable)
	if err != nil {
		slog.Warn("axis table unavailable", "table", axisTable, "error", err)
		a = Table{}
	}

	return m, a, nil
}

// openReadOnly opens the database with a busy timeout and query-only mode.
func openReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// One connection is enough for a single sequential load.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA query_only = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return db, nil
}

// readSQLTable selects every row of a table, stringifying cells so that
// the loose numeric coercion at lookup time applies uniformly.
func readSQLTable(db *sql.DB, name string) (Table, error) {
	if !identPattern.MatchString(name) {
		return Table{}, fmt.Errorf("invalid table name %q", name)
	}

	rows, err := db.Query(`SELECT * FROM "` + name + `"`)
	if err != nil {
		return Table{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Table{}, fmt.Errorf("read columns: %w", err)
	}

	t := Table{Columns: cols}
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Table{}, fmt.Errorf("scan row: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if cells[i].Valid {
				row[col] = cells[i].String
			}
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("iterate rows: %w", err)
	}

	return t, nil
}
