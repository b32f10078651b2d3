// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"strings"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
)

// Record fields a column can be mapped to.
const (
	FieldID          = "id"
	FieldDescription = "legal_description"
	FieldMeridian    = "meridian"
	FieldTownship    = "township"
	FieldRange       = "range"
	FieldSection     = "section"
)

// columnRule maps column headings to a record field. A heading matches when
// it equals one of equals or contains one of contains.
type columnRule struct {
	equals   []string
	contains []string
	field    string
}

// columnRules is evaluated in order; the first match wins.
var columnRules = []columnRule{
	{contains: []string{"legal description", "legal desc", "gis legal"}, field: FieldDescription},
	{contains: []string{"meridian"}, field: FieldMeridian},
	{contains: []string{"township"}, field: FieldTownship},
	{equals: []string{"rng"}, contains: []string{"range"}, field: FieldRange},
	{equals: []string{"sec"}, contains: []string{"section"}, field: FieldSection},
	{equals: []string{"id", "record id", "lease id"}, contains: []string{"transaction number", "transaction"}, field: FieldID},
}

// NormalizeHeading lower-cases a heading and treats underscores as spaces,
// so "Legal Description" and "legal_description" compare equal.
func NormalizeHeading(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

// FieldFor returns the record field a heading maps to, or "".
func FieldFor(heading string) string {
	h := NormalizeHeading(heading)
	for _, rule := range columnRules {
		for _, eq := range rule.equals {
			if h == eq {
				return rule.field
			}
		}
		for _, kw := range rule.contains {
			if strings.Contains(h, kw) {
				return rule.field
			}
		}
	}
	return ""
}

// MapColumns returns the column index of every recognised record field.
// When two headings map to the same field the first one wins. A legal
// description column is required.
func MapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range header {
		field := FieldFor(h)
		if field == "" {
			continue
		}
		if _, seen := cols[field]; !seen {
			cols[field] = i
		}
	}
	if _, ok := cols[FieldDescription]; !ok {
		return nil, fmt.Errorf("no legal description column in %q", header)
	}
	return cols, nil
}

// setField assigns value to the record field named by field.
func setField(rec *batch.Record, field, value string) {
	value = strings.TrimSpace(value)
	switch field {
	case FieldID:
		rec.ID = value
	case FieldDescription:
		rec.Description = value
	case FieldMeridian:
		rec.Meridian = value
	case FieldTownship:
		rec.Township = value
	case FieldRange:
		rec.Range = value
	case FieldSection:
		rec.Section = value
	}
}

// NewRecord builds a record from field values and the remaining columns.
// Blank attributes are dropped. Rows without an ID get fallbackID.
func NewRecord(values, attrs map[string]string, fallbackID string) batch.Record {
	var rec batch.Record
	for field, v := range values {
		setField(&rec, field, v)
	}
	for heading, v := range attrs {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if rec.Attributes == nil {
			rec.Attributes = make(map[string]string, len(attrs))
		}
		rec.Attributes[strings.TrimSpace(heading)] = v
	}
	if rec.ID == "" {
		rec.ID = fallbackID
	}
	return rec
}
