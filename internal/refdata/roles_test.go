package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoles_TypicalHeaders(t *testing.T) {
	roles := ResolveRoles([]string{"Parameter", "Min", "Max", "AgeGroup"}, Overrides{})

	assert.Equal(t, "Parameter", roles.Parameter)
	assert.Equal(t, "Min", roles.Min)
	assert.Equal(t, "Max", roles.Max)
	assert.Equal(t, "AgeGroup", roles.AgeGroup)
	assert.Empty(t, roles.AgeMin)
	assert.Empty(t, roles.AgeMax)
}

func TestResolveRoles_LooseHeaders(t *testing.T) {
	roles := ResolveRoles([]string{"Measure Name", "Lower Bound", "Upper Bound", "Age Group"}, Overrides{})

	assert.Equal(t, "Measure Name", roles.Parameter)
	assert.Equal(t, "Lower Bound", roles.Min)
	assert.Equal(t, "Upper Bound", roles.Max)
	assert.Equal(t, "Age Group", roles.AgeGroup)
}

func TestResolveRoles_NumericAgeBounds(t *testing.T) {
	roles := ResolveRoles([]string{"metric", "min_value", "max_value", "age_min", "age_max"}, Overrides{})

	assert.Equal(t, "metric", roles.Parameter)
	assert.Equal(t, "min_value", roles.Min)
	assert.Equal(t, "max_value", roles.Max)
	assert.Equal(t, "age_min", roles.AgeMin)
	assert.Equal(t, "age_max", roles.AgeMax)
	assert.Empty(t, roles.AgeGroup, "exact column named age is required for the categorical role")
}

func TestResolveRoles_FirstMatchByScanOrder(t *testing.T) {
	// Both headers contain "min"; the first in scan order wins.
	roles := ResolveRoles([]string{"min_a", "min_b"}, Overrides{})
	assert.Equal(t, "min_a", roles.Min)
}

func TestResolveRoles_RolesDoNotReserveColumns(t *testing.T) {
	// With no plain min column, the loose "age_min" header satisfies both
	// the Min and AgeMin roles. Deliberately permissive.
	roles := ResolveRoles([]string{"parameter", "age_min", "age_max"}, Overrides{})
	assert.Equal(t, "age_min", roles.Min)
	assert.Equal(t, "age_min", roles.AgeMin)
	assert.Equal(t, "age_max", roles.Max)
	assert.Equal(t, "age_max", roles.AgeMax)
}

func TestResolveRoles_Overrides(t *testing.T) {
	columns := []string{"Parameter", "Min", "Max", "col_x", "col_y"}
	roles := ResolveRoles(columns, Overrides{Min: "col_x", Max: "col_y"})

	assert.Equal(t, "col_x", roles.Min, "override bypasses heuristics")
	assert.Equal(t, "col_y", roles.Max)
	assert.Equal(t, "Parameter", roles.Parameter, "unset override roles stay heuristic")
}

func TestResolveRoles_NoRecognizableColumns(t *testing.T) {
	roles := ResolveRoles([]string{"alpha", "beta"}, Overrides{})
	assert.Equal(t, Roles{}, roles)
}
