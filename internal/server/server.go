// SPDX-License-Identifier: Apache-2.0

// Package server wires configuration, the parser and the MCP tools into a
// runnable MCP server.
package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
	"github.com/cslb/ldtoolbox-mcp/internal/config"
	"github.com/cslb/ldtoolbox-mcp/internal/legal"
	"github.com/cslb/ldtoolbox-mcp/internal/legal/patterns"
	"github.com/cslb/ldtoolbox-mcp/internal/tool"
)

// New builds an MCP server with every tool registered.
func New(cfg *config.Config, log *zap.Logger) (*mcp.Server, error) {
	table, err := loadTable(cfg.Patterns.Path)
	if err != nil {
		return nil, err
	}
	log.Info("pattern table loaded",
		zap.String("path", cfg.Patterns.Path),
		zap.Int("keywords", table.Len()))
	for _, kw := range table.EmptyKeywords() {
		log.Warn("pattern keyword has no lookup codes", zap.String("keyword", kw))
	}

	parser := legal.NewParser(table,
		legal.WithLogger(log),
		legal.WithMaxLotSpan(cfg.Parser.MaxLotSpan))
	runner := batch.NewRunner(parser, batch.Config{
		State:             cfg.PLSS.State,
		Workers:           cfg.Batch.Workers,
		ConsistencyFields: cfg.Batch.ConsistencyFields,
		Logger:            log,
	})
	ts := tool.NewToolset(parser, runner, cfg.PLSS.State)

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	mcp.AddTool(srv, tool.MetadataParseLegalDescription, ts.ParseLegalDescription)
	mcp.AddTool(srv, tool.MetadataFirstDivisionID, ts.FirstDivisionID)
	mcp.AddTool(srv, tool.MetadataAuditLegalDescriptions, ts.AuditLegalDescriptions)

	return srv, nil
}

// Run serves srv over stdin/stdout until ctx is done or the client
// disconnects.
func Run(ctx context.Context, srv *mcp.Server) error {
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func loadTable(path string) (*patterns.Table, error) {
	if path == "" {
		return patterns.Default()
	}
	return patterns.Load(path)
}
