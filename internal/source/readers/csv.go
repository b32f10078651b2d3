// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
	"github.com/cslb/ldtoolbox-mcp/internal/source"
)

// CSVReader reads a spreadsheet exported as CSV. The first row is the
// header; columns are matched to record fields by heading and the rest are
// kept as record attributes.
type CSVReader struct{}

// NewCSVReader creates a new CSVReader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

func (r *CSVReader) Name() string {
	return "csv"
}

// CanHandle returns true for sources with a "csv" format hint, or whose
// first line is a comma-separated header naming a legal description.
func (r *CSVReader) CanHandle(doc source.Document) bool {
	if strings.EqualFold(doc.Format, "csv") {
		return true
	}
	first, _, _ := strings.Cut(string(doc.Content), "\n")
	return strings.Contains(first, ",") && strings.Contains(source.NormalizeHeading(first), "legal")
}

func (r *CSVReader) Read(ctx context.Context, doc source.Document) ([]batch.Record, error) {
	reader := csv.NewReader(bytes.NewReader(doc.Content))
	reader.FieldsPerRecord = -1 // exports pad short rows inconsistently

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty csv")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols, err := source.MapColumns(header)
	if err != nil {
		return nil, err
	}
	var extra []int
	for i, h := range header {
		if source.FieldFor(h) == "" && strings.TrimSpace(h) != "" {
			extra = append(extra, i)
		}
	}

	var records []batch.Record
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}
		if blank(fields) {
			continue
		}

		values := make(map[string]string, len(cols))
		for field, idx := range cols {
			if idx < len(fields) {
				values[field] = fields[idx]
			}
		}
		attrs := make(map[string]string, len(extra))
		for _, idx := range extra {
			if idx < len(fields) {
				attrs[header[idx]] = fields[idx]
			}
		}
		records = append(records, source.NewRecord(values, attrs, "row "+strconv.Itoa(row)))
	}
	return records, nil
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
