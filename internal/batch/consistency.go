// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"strings"
)

// DefaultConsistencyFields are the lease attributes every record of one
// transaction must agree on.
var DefaultConsistencyFields = []string{
	"Lease Type",
	"Lease Subtype",
	"Lessee(s)",
	"Legacy Lease Number",
	"Start Date (Letter Merge)",
	"End Date (Letter Merge)",
	"Internal ID",
	"Lease Terms (Years)",
	"Administrator",
	"District",
}

// Attribute returns the trimmed value of the named attribute, matching the
// name case-insensitively. A missing attribute reads as "".
func (r Record) Attribute(name string) string {
	name = strings.TrimSpace(name)
	for k, v := range r.Attributes {
		if strings.EqualFold(strings.TrimSpace(k), name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Mismatches groups records by ID and returns, for every ID whose records
// disagree, the fields that differ in fields order. Records without an ID
// are never grouped.
func Mismatches(records []Record, fields []string) map[string][]string {
	groups := make(map[string][]Record)
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		groups[rec.ID] = append(groups[rec.ID], rec)
	}

	mismatched := make(map[string][]string)
	for id, group := range groups {
		if len(group) < 2 {
			continue
		}
		var differing []string
		for _, field := range fields {
			want := group[0].Attribute(field)
			for _, rec := range group[1:] {
				if rec.Attribute(field) != want {
					differing = append(differing, field)
					break
				}
			}
		}
		if len(differing) > 0 {
			mismatched[id] = differing
		}
	}
	return mismatched
}

func mismatchMessage(fields []string) string {
	return "Fields mismatch: [" + strings.Join(fields, ", ") + "]"
}
