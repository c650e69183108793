// Package refdata loads and queries the age-based reference tables.
//
// The measurement reference table is a loosely structured external dataset:
// its column names are not guaranteed, so the resolver identifies which
// column plays which role (parameter, min, max, age) by case-insensitive
// substring matching over the header set. Role detection is a pure function
// from the header list to a role map, with injectable overrides for callers
// that know their schema exactly.
//
// Reference data is optional end to end. A missing file, an unreadable
// database, or a table with no recognizable columns never fails report
// generation; unresolved lookups yield an unknown band and the value
// classifier degrades to Unknown.
//
// Tables are loaded once at startup and never mutated afterwards, so
// concurrent evaluations may share them without locking.
package refdata
