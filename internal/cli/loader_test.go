package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoecg/neoecg/internal/refdata"
)

func TestNewProvider(t *testing.T) {
	t.Run("no refs configured", func(t *testing.T) {
		p, err := NewProvider(RefsOptions{})
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("csv", func(t *testing.T) {
		p, err := NewProvider(RefsOptions{Refs: "ranges.csv", AxisRefs: "axis.csv"})
		require.NoError(t, err)
		csv, ok := p.(refdata.CSVProvider)
		require.True(t, ok)
		assert.Equal(t, "ranges.csv", csv.MeasurementPath)
		assert.Equal(t, "axis.csv", csv.AxisPath)
	})

	t.Run("yaml", func(t *testing.T) {
		for _, path := range []string{"ranges.yaml", "ranges.yml", "RANGES.YAML"} {
			p, err := NewProvider(RefsOptions{Refs: path})
			require.NoError(t, err)
			assert.IsType(t, refdata.YAMLProvider{}, p, path)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		for _, path := range []string{"ranges.db", "ranges.sqlite", "ranges.sqlite3"} {
			p, err := NewProvider(RefsOptions{Refs: path, RefsTable: "m", AxisTable: "a"})
			require.NoError(t, err)
			sq, ok := p.(refdata.SQLiteProvider)
			require.True(t, ok, path)
			assert.Equal(t, "m", sq.MeasurementTable)
			assert.Equal(t, "a", sq.AxisTable)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewProvider(RefsOptions{Refs: "ranges.xlsx"})
		assert.ErrorContains(t, err, "unsupported reference data format")
	})
}
