// SPDX-License-Identifier: Apache-2.0

// Package source turns exported lease spreadsheets into batch records.
package source

import (
	"context"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
)

// Document describes the raw input to the source pipeline.
type Document struct {
	// Content is the raw export, e.g. a CSV sheet or a YAML/JSON list.
	Content []byte
	Format  string
	ID      string
}

type Reader interface {
	CanHandle(doc Document) bool
	Read(ctx context.Context, doc Document) ([]batch.Record, error)
	Name() string
}
