// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
	"github.com/cslb/ldtoolbox-mcp/internal/source"
)

// YAMLReader reads records from YAML or JSON: either a top-level list of
// objects or an object with a "records" list. Keys are matched to record
// fields the same way CSV headings are; other keys become attributes.
type YAMLReader struct{}

func NewYAMLReader() *YAMLReader {
	return &YAMLReader{}
}

func (r *YAMLReader) Name() string {
	return "yaml"
}

func (r *YAMLReader) CanHandle(doc source.Document) bool {
	switch strings.ToLower(doc.Format) {
	case "yaml", "yml", "json":
		return true
	}
	content := strings.TrimSpace(string(doc.Content))
	if strings.HasPrefix(content, "[") || strings.HasPrefix(content, "{") || strings.HasPrefix(content, "- ") {
		return true
	}
	first, _, _ := strings.Cut(content, "\n")
	return strings.Contains(first, ":") && !strings.Contains(first, ",")
}

func (r *YAMLReader) Read(_ context.Context, doc source.Document) ([]batch.Record, error) {
	rows, err := decodeRows(doc.Content)
	if err != nil {
		return nil, err
	}

	records := make([]batch.Record, 0, len(rows))
	for i, row := range rows {
		values := make(map[string]string, len(row))
		attrs := make(map[string]string)
		for key, v := range row {
			field := source.FieldFor(key)
			if field == "" {
				attrs[key] = scalar(v)
				continue
			}
			if _, seen := values[field]; !seen {
				values[field] = scalar(v)
			}
		}
		if _, ok := values[source.FieldDescription]; !ok {
			return nil, fmt.Errorf("record %d has no legal description", i+1)
		}
		records = append(records, source.NewRecord(values, attrs, "record "+strconv.Itoa(i+1)))
	}
	return records, nil
}

func decodeRows(content []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML/JSON records: %w", err)
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		list, ok := v["records"].([]any)
		if !ok {
			return nil, fmt.Errorf("no records list found")
		}
		items = list
	default:
		return nil, fmt.Errorf("no records list found")
	}

	rows := make([]map[string]any, 0, len(items))
	for i, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d is not a mapping", i+1)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// scalar renders a decoded YAML/JSON value the way it would appear in a
// spreadsheet cell.
func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
