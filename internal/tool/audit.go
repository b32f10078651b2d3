// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
	"github.com/cslb/ldtoolbox-mcp/internal/source"
)

// MetadataAuditLegalDescriptions describes the audit_legal_descriptions tool.
var MetadataAuditLegalDescriptions = &mcp.Tool{
	Name: "audit_legal_descriptions",
	Description: "Resolve a batch of lease records (ID, legal description, meridian, township, range, " +
		"section) to first-division IDs, second-division lookups and attribute filters. " +
		"Pass records directly, or pass a raw CSV/YAML/JSON export as content and the " +
		"columns are matched by heading. " +
		"Records of one transaction (same id) whose lease fields disagree all fail with a " +
		"fields mismatch. Records that fail or carry audit-only remnants are listed in an audit CSV; one bad " +
		"record never stops the batch. Results keep the order of the input records.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw lease export (CSV with a header row, or a YAML/JSON list of records)",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint for content: csv, yaml or json. Detected from content if omitted.",
				"enum":        []string{"csv", "yaml", "json"},
			},
			"records": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"id"},
					"properties": map[string]interface{}{
						"id":                map[string]interface{}{"type": "string"},
						"legal_description": map[string]interface{}{"type": "string"},
						"meridian":          map[string]interface{}{"type": "string"},
						"township":          map[string]interface{}{"type": "string"},
						"range":             map[string]interface{}{"type": "string"},
						"section":           map[string]interface{}{"type": "string"},
						"attributes": map[string]interface{}{
							"type":                 "object",
							"additionalProperties": map[string]interface{}{"type": "string"},
							"description":          "Other lease columns by heading. Records sharing an id must agree on the lease fields.",
						},
					},
				},
			},
		},
	},
}

// InputAuditLegalDescriptions is the input for the AuditLegalDescriptions tool.
type InputAuditLegalDescriptions struct {
	Records []batch.Record `json:"records,omitempty"`
	Content string         `json:"content,omitempty"`
	Format  string         `json:"format,omitempty"`
}

// OutputAuditLegalDescriptions is the output for the AuditLegalDescriptions tool.
type OutputAuditLegalDescriptions struct {
	RunID    string         `json:"run_id"`
	Results  []batch.Result `json:"results"`
	Failures int            `json:"failures"`
	Warnings int            `json:"warnings"`
	// AuditCSV lists failed and warned records, header included.
	AuditCSV string `json:"audit_csv"`
	// ReaderUsed names the reader that decoded content, if any.
	ReaderUsed string `json:"reader_used,omitempty"`
}

// AuditLegalDescriptions resolves a batch of records.
func (ts *Toolset) AuditLegalDescriptions(ctx context.Context, _ *mcp.CallToolRequest, input InputAuditLegalDescriptions) (*mcp.CallToolResult, OutputAuditLegalDescriptions, error) {
	records := input.Records
	var readerUsed string
	if strings.TrimSpace(input.Content) != "" {
		result, err := ts.sources.Read(ctx, source.Document{
			Content: []byte(input.Content),
			Format:  input.Format,
			ID:      "content",
		})
		if err != nil {
			return nil, OutputAuditLegalDescriptions{}, fmt.Errorf("failed to read records: %w", err)
		}
		records = append(records, result.Records...)
		readerUsed = result.ReaderUsed
	}
	if len(records) == 0 {
		return nil, OutputAuditLegalDescriptions{}, fmt.Errorf("records are required")
	}

	report := ts.runner.Run(ctx, records)

	var audit strings.Builder
	if err := batch.WriteAuditCSV(&audit, report); err != nil {
		return nil, OutputAuditLegalDescriptions{}, err
	}

	return nil, OutputAuditLegalDescriptions{
		RunID:      report.RunID,
		Results:    report.Results,
		Failures:   report.Failures,
		Warnings:   report.Warnings,
		AuditCSV:   audit.String(),
		ReaderUsed: readerUsed,
	}, nil
}
