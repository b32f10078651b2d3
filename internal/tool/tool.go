// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the legal description parser as MCP tools.
package tool

import (
	"github.com/cslb/ldtoolbox-mcp/internal/batch"
	"github.com/cslb/ldtoolbox-mcp/internal/legal"
	"github.com/cslb/ldtoolbox-mcp/internal/plss"
	"github.com/cslb/ldtoolbox-mcp/internal/source"
	"github.com/cslb/ldtoolbox-mcp/internal/source/readers"
)

// Toolset holds the shared, read-only state behind every tool handler.
type Toolset struct {
	parser  *legal.Parser
	runner  *batch.Runner
	sources *source.Pipeline
	state   string
}

// NewToolset creates a Toolset. state is the default first-division state
// prefix; plss.DefaultState if empty.
func NewToolset(parser *legal.Parser, runner *batch.Runner, state string) *Toolset {
	if state == "" {
		state = plss.DefaultState
	}
	return &Toolset{
		parser:  parser,
		runner:  runner,
		sources: source.NewPipeline(readers.NewYAMLReader(), readers.NewCSVReader()),
		state:   state,
	}
}
