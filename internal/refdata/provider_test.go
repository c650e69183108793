package refdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	m, a Table
	err  error
}

func (s stubProvider) Load() (Table, Table, error) { return s.m, s.a, s.err }

func TestLoad_NilProvider(t *testing.T) {
	m, a := Load(nil)
	assert.True(t, m.Empty())
	assert.True(t, a.Empty())
}

func TestLoad_ErrorDegradesToEmpty(t *testing.T) {
	m, a := Load(stubProvider{
		m:   Table{Columns: []string{"x"}, Rows: []Row{{"x": "1"}}},
		err: errors.New("boom"),
	})
	assert.True(t, m.Empty())
	assert.True(t, a.Empty())
}

func TestLoad_PassesTablesThrough(t *testing.T) {
	want := Table{Columns: []string{"x"}, Rows: []Row{{"x": "1"}}}
	m, a := Load(stubProvider{m: want})
	assert.Equal(t, want, m)
	assert.True(t, a.Empty())
}
