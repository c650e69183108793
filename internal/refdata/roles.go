package refdata

import "strings"

// Roles maps each role the resolver needs onto an actual column name.
// An empty string means the role could not be identified; the lookup stage
// that depends on it is skipped rather than failed.
type Roles struct {
	Parameter string
	Min       string
	Max       string
	AgeGroup  string // single categorical age column
	AgeMin    string // numeric lower age bound
	AgeMax    string // numeric upper age bound
}

// Overrides pins exact column names for callers that know their schema.
// A non-empty field bypasses heuristic detection for that role.
type Overrides struct {
	Parameter string
	Min       string
	Max       string
	AgeGroup  string
	AgeMin    string
	AgeMax    string
}

// ResolveRoles identifies which column plays which role by case-insensitive
// substring matching over the header set. Each role independently takes the
// first matching column in scan order; roles do not reserve columns, so a
// header like "age_min" can satisfy both the Min and AgeMin roles, exactly
// as loose as the matching is meant to be.
func ResolveRoles(columns []string, ov Overrides) Roles {
	r := Roles{
		Parameter: ov.Parameter,
		Min:       ov.Min,
		Max:       ov.Max,
		AgeGroup:  ov.AgeGroup,
		AgeMin:    ov.AgeMin,
		AgeMax:    ov.AgeMax,
	}

	for _, c := range columns {
		cl := strings.ToLower(c)
		if r.Parameter == "" && (strings.Contains(cl, "parameter") || strings.Contains(cl, "measure") || cl == "name" || cl == "metric") {
			r.Parameter = c
		}
		if r.Min == "" && (strings.Contains(cl, "min") || strings.Contains(cl, "lower")) {
			r.Min = c
		}
		if r.Max == "" && (strings.Contains(cl, "max") || strings.Contains(cl, "upper")) {
			r.Max = c
		}
		if r.AgeGroup == "" && (strings.Contains(cl, "agegroup") || strings.Contains(cl, "age group") || cl == "age") {
			r.AgeGroup = c
		}
		if r.AgeMin == "" && (strings.Contains(cl, "age_min") || strings.Contains(cl, "agemin") || strings.Contains(cl, "lower_age")) {
			r.AgeMin = c
		}
		if r.AgeMax == "" && (strings.Contains(cl, "age_max") || strings.Contains(cl, "agemax") || strings.Contains(cl, "upper_age")) {
			r.AgeMax = c
		}
	}

	return r
}
