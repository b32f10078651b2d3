// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cslb/ldtoolbox-mcp/internal/plss"
)

// MetadataFirstDivisionID describes the first_division_id tool.
var MetadataFirstDivisionID = &mcp.Tool{
	Name: "first_division_id",
	Description: "Build the PLSS first-division ID (FRSTDIVID) of a section from its meridian, " +
		"township, range and section number. Townships take N/S and ranges E/W; a .5 marks a " +
		"fractional township or range. When lookups are supplied the attribute filter selecting " +
		"those second divisions is returned as well.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"meridian", "township", "range", "section"},
		"properties": map[string]interface{}{
			"meridian": map[string]interface{}{
				"type":        "string",
				"description": "Principal meridian number, one or two digits.",
			},
			"township": map[string]interface{}{
				"type":        "string",
				"description": "Township with direction, e.g. \"4N\" or \"12.5 S\".",
			},
			"range": map[string]interface{}{
				"type":        "string",
				"description": "Range with direction, e.g. \"68W\".",
			},
			"section": map[string]interface{}{
				"type":        "string",
				"description": "Section number, one or two digits.",
			},
			"state": map[string]interface{}{
				"type":        "string",
				"description": "Two-letter state prefix. Defaults to the server's configured state.",
			},
			"lookups": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Optional second-division lookups, as returned by parse_legal_description.",
			},
		},
	},
}

// InputFirstDivisionID is the input for the FirstDivisionID tool.
type InputFirstDivisionID struct {
	Meridian string   `json:"meridian"`
	Township string   `json:"township"`
	Range    string   `json:"range"`
	Section  string   `json:"section"`
	State    string   `json:"state"`
	Lookups  []string `json:"lookups"`
}

// OutputFirstDivisionID is the output for the FirstDivisionID tool.
type OutputFirstDivisionID struct {
	FirstDivision string `json:"first_division"`
	Filter        string `json:"filter,omitempty"`
}

// FirstDivisionID builds a first-division ID and, optionally, its filter.
func (ts *Toolset) FirstDivisionID(_ context.Context, _ *mcp.CallToolRequest, input InputFirstDivisionID) (*mcp.CallToolResult, OutputFirstDivisionID, error) {
	state := input.State
	if state == "" {
		state = ts.state
	}

	id, err := plss.FirstDivision(state, input.Meridian, input.Township, input.Range, input.Section)
	if err != nil {
		return nil, OutputFirstDivisionID{}, fmt.Errorf("invalid first division: %w", err)
	}

	out := OutputFirstDivisionID{FirstDivision: id}
	if len(input.Lookups) > 0 {
		out.Filter = plss.SecondDivisionFilter(id, input.Lookups)
	}
	return nil, out, nil
}
