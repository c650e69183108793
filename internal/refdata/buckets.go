package refdata

import "strings"

// ageGroupMatches reports whether a categorical age-group label applies to
// an age in days. Labels are matched by keyword heuristics that mirror the
// loose wording found in published neonatal reference tables; a label
// containing "all" applies at any age.
//
// The keywords are deliberately permissive ("7" matches any label that
// mentions a 7) and are kept that way for compatibility with the matching
// rules the reference workbook was built against.
func ageGroupMatches(label string, ageDays int) bool {
	v := strings.ToLower(label)
	if strings.Contains(v, "all") {
		return true
	}
	switch {
	case ageDays == 0:
		return containsAny(v, "<1", " day", "0-1")
	case ageDays >= 1 && ageDays <= 7:
		return containsAny(v, "1–7", "1-7", "week", "7")
	case ageDays > 7:
		return containsAny(v, ">7", "month", "1 month", "30")
	default:
		return false
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
