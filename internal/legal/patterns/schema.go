// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schemaSource constrains a pattern table: non-empty keywords mapping to
// lists of non-empty codes. An empty list is accepted here and surfaced
// through Table.EmptyKeywords instead.
const schemaSource = `
#Code: string & !=""

#Table: {
	[string & !=""]: [...#Code]
}
`

// Validate checks entries against the pattern table schema.
func Validate(entries map[string][]string) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile pattern schema: %w", err)
	}

	// A YAML `KEY: []` may decode to a nil slice; encode it as an empty list.
	lists := make(map[string][]string, len(entries))
	for kw, codes := range entries {
		if codes == nil {
			codes = []string{}
		}
		lists[kw] = codes
	}

	table := schema.LookupPath(cue.ParsePath("#Table"))
	value := ctx.Encode(lists)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode pattern table: %w", err)
	}

	if err := table.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid pattern table: %w", err)
	}
	return nil
}
