package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLProvider_Mapping(t *testing.T) {
	path := writeFile(t, "refs.yaml", `
measurements:
  - parameter: HR
    age_group: 1-7 days
    min: 100
    max: 180
  - parameter: PR
    age_group: All ages
    min: 70
    max: 140
axis:
  - age: 0-7 days
    normal_range: +30 to +190
`)

	m, a, err := YAMLProvider{Path: path}.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"parameter", "age_group", "min", "max"}, m.Columns,
		"columns keep document order")
	require.Len(t, m.Rows, 2)
	assert.Equal(t, "100", m.Rows[0]["min"], "scalars arrive as text")
	require.Len(t, a.Rows, 1)
	assert.Equal(t, "+30 to +190", a.Rows[0]["normal_range"])
}

func TestYAMLProvider_BareSequence(t *testing.T) {
	path := writeFile(t, "refs.yaml", `
- parameter: HR
  min: 100
  max: 180
`)

	m, a, err := YAMLProvider{Path: path}.Load()
	require.NoError(t, err)
	assert.Len(t, m.Rows, 1)
	assert.True(t, a.Empty())
}

func TestYAMLProvider_ColumnOrderAcrossRows(t *testing.T) {
	// A column first seen on the second row is appended after the first
	// row's columns.
	path := writeFile(t, "refs.yaml", `
- parameter: HR
  min: 100
- parameter: PR
  min: 70
  max: 140
`)

	m, _, err := YAMLProvider{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"parameter", "min", "max"}, m.Columns)
}

func TestYAMLProvider_NonScalarCellsIgnored(t *testing.T) {
	path := writeFile(t, "refs.yaml", `
- parameter: HR
  min: 100
  notes: [a, b]
`)

	m, _, err := YAMLProvider{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"parameter", "min"}, m.Columns)
	_, ok := m.Rows[0]["notes"]
	assert.False(t, ok)
}

func TestYAMLProvider_Errors(t *testing.T) {
	t.Run("scalar document", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "just a string\n")
		_, _, err := YAMLProvider{Path: path}.Load()
		assert.ErrorContains(t, err, "expected a sequence or mapping")
	})

	t.Run("row is not a mapping", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "measurements:\n  - 42\n")
		_, _, err := YAMLProvider{Path: path}.Load()
		assert.ErrorContains(t, err, "row is not a mapping")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := YAMLProvider{Path: "absent.yaml"}.Load()
		assert.Error(t, err)
	})
}
