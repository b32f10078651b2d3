// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/cslb/ldtoolbox-mcp/internal/batch"
)

// Pipeline decodes lease exports with the first reader that accepts them.
type Pipeline struct {
	readers []Reader
}

// NewPipeline creates a Pipeline. Readers are tried in the order given, so
// stricter sniffers belong first.
func NewPipeline(readers ...Reader) *Pipeline {
	return &Pipeline{readers: readers}
}

// ReadResult is the output of a successful pipeline read.
type ReadResult struct {
	Records    []batch.Record
	ReaderUsed string
}

// Read decodes doc into records. An export that decodes to no records is
// an error, since nothing downstream can audit it.
func (p *Pipeline) Read(ctx context.Context, doc Document) (ReadResult, error) {
	var reader Reader
	for _, r := range p.readers {
		if r.CanHandle(doc) {
			reader = r
			break
		}
	}
	if reader == nil {
		return ReadResult{}, fmt.Errorf("unsupported record format %q for %s: known formats are %s",
			doc.Format, doc.ID, strings.Join(p.Formats(), ", "))
	}

	records, err := reader.Read(ctx, doc)
	if err != nil {
		return ReadResult{}, fmt.Errorf("%s export %s: %w", reader.Name(), doc.ID, err)
	}
	if len(records) == 0 {
		return ReadResult{}, fmt.Errorf("%s export %s has no records", reader.Name(), doc.ID)
	}
	return ReadResult{Records: records, ReaderUsed: reader.Name()}, nil
}

// Formats lists the registered reader names in trial order.
func (p *Pipeline) Formats() []string {
	names := make([]string, len(p.readers))
	for i, r := range p.readers {
		names[i] = r.Name()
	}
	return names
}
