// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the keyword table used to expand second-division
// keywords (NE, N2, SWNE, ...) into the lookup codes of the PLSS layer.
package patterns

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed default_patterns.yaml
var defaultPatterns []byte

// Table is an immutable keyword-to-codes mapping. Keywords are
// case-sensitive as authored.
type Table struct {
	entries  map[string][]string
	keywords []string
}

// New builds a Table from entries. The input map is copied, so later
// changes to it are not observed by the Table.
func New(entries map[string][]string) *Table {
	t := &Table{
		entries:  make(map[string][]string, len(entries)),
		keywords: make([]string, 0, len(entries)),
	}
	for kw, codes := range entries {
		t.entries[kw] = slices.Clone(codes)
		t.keywords = append(t.keywords, kw)
	}
	// Longest first so a scan visits NENE before NE; ties broken lexically.
	slices.SortFunc(t.keywords, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return t
}

// Parse decodes a YAML document of the form `KEYWORD: [CODE, ...]`,
// validates it and returns the resulting Table.
func Parse(data []byte) (*Table, error) {
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pattern table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("pattern table is empty")
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return New(entries), nil
}

// Load reads and parses the pattern table stored at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern table %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("pattern table %s: %w", path, err)
	}
	return t, nil
}

// Default returns the embedded aliquot table.
func Default() (*Table, error) {
	return Parse(defaultPatterns)
}

// Codes returns the lookup codes for kw. The returned slice must not be
// modified.
func (t *Table) Codes(kw string) ([]string, bool) {
	codes, ok := t.entries[kw]
	return codes, ok
}

// Has reports whether kw is a known keyword.
func (t *Table) Has(kw string) bool {
	_, ok := t.entries[kw]
	return ok
}

// Keywords returns every keyword, longest first.
func (t *Table) Keywords() []string {
	return slices.Clone(t.keywords)
}

// Len returns the number of keywords in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// EmptyKeywords lists keywords whose code set is empty. Such entries are
// legal but contribute nothing when matched, which usually points to a
// configuration mistake.
func (t *Table) EmptyKeywords() []string {
	var empty []string
	for _, kw := range t.keywords {
		if len(t.entries[kw]) == 0 {
			empty = append(empty, kw)
		}
	}
	slices.Sort(empty)
	return empty
}
