// SPDX-License-Identifier: Apache-2.0

package plss

import (
	"strings"
)

const (
	firstDivField  = "FRSTDIVID"
	secondDivField = "SECDIVNO"
	allLookup      = "ALL"
)

// SecondDivisionFilter returns the attribute filter that selects the
// polygons of firstDiv named by lookups. A lookup list of just "ALL", or
// an empty one, selects the whole section.
func SecondDivisionFilter(firstDiv string, lookups []string) string {
	base := firstDivField + " = " + quote(firstDiv)

	switch {
	case len(lookups) == 0, len(lookups) == 1 && lookups[0] == allLookup:
		return base
	case len(lookups) == 1:
		return base + " AND " + secondDivField + " = " + quote(lookups[0])
	}

	quoted := make([]string, len(lookups))
	for i, l := range lookups {
		quoted[i] = quote(l)
	}
	return base + " AND " + secondDivField + " IN (" + strings.Join(quoted, ", ") + ")"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
