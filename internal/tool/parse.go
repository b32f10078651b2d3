// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cslb/ldtoolbox-mcp/internal/legal"
)

// MetadataParseLegalDescription describes the parse_legal_description tool.
var MetadataParseLegalDescription = &mcp.Tool{
	Name: "parse_legal_description",
	Description: "Parse a PLSS legal description (for example \"N2NE, SWNE and Lots 1-4\") into the " +
		"second-division lookup codes used to select section polygons. " +
		"An empty description or \"All\" returns the single lookup ALL. " +
		"\"All except ...\" phrases and descriptions with no recognisable part are rejected " +
		"for manual review. Directional fractions such as NE1/4 and unrecognised words are " +
		"returned separately for audit and never become lookups.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Legal description text as it appears on the lease record. May be empty.",
			},
		},
	},
}

// InputParseLegalDescription is the input for the ParseLegalDescription tool.
type InputParseLegalDescription struct {
	Description string `json:"description"`
}

// OutputParseLegalDescription is the output for the ParseLegalDescription tool.
type OutputParseLegalDescription struct {
	Outcome legal.Outcome `json:"outcome"`
	// Classification is one of all, partial.
	Classification string `json:"classification"`
	// Audit is the reviewer message for fractionals and fall-outs, if any.
	Audit string `json:"audit,omitempty"`
}

// ParseLegalDescription parses one legal description.
func (ts *Toolset) ParseLegalDescription(_ context.Context, _ *mcp.CallToolRequest, input InputParseLegalDescription) (*mcp.CallToolResult, OutputParseLegalDescription, error) {
	out, err := ts.parser.Parse(input.Description)
	if err != nil {
		return nil, OutputParseLegalDescription{}, err
	}

	return nil, OutputParseLegalDescription{
		Outcome:        out,
		Classification: legal.Classify(input.Description).String(),
		Audit:          legal.AuditMessage(out),
	}, nil
}
