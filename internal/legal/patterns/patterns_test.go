// SPDX-License-Identifier: Apache-2.0

package patterns_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cslb/ldtoolbox-mcp/internal/legal/patterns"
)

func TestDefault(t *testing.T) {
	table, err := patterns.Default()
	require.NoError(t, err)

	// 4 quarters, 4 halves, 16 quarter-quarters, 16 halves of quarters.
	assert.Equal(t, 40, table.Len())
	assert.Empty(t, table.EmptyKeywords())

	codes, ok := table.Codes("NE")
	require.True(t, ok)
	assert.Equal(t, []string{"NENE", "NWNE", "SENE", "SWNE"}, codes)

	codes, ok = table.Codes("E2NW")
	require.True(t, ok)
	assert.Equal(t, []string{"NENW", "SENW"}, codes)

	assert.False(t, table.Has("ne"), "keywords are case-sensitive")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantErr     bool
		errContains string
		wantLen     int
	}{
		{
			name:    "flow and block lists",
			doc:     "NE: [NENE, NWNE]\nSW:\n  - NESW\n  - SESW\n",
			wantLen: 2,
		},
		{
			name:    "empty code list is accepted",
			doc:     "NE: []\nSW: [NESW]\n",
			wantLen: 2,
		},
		{
			name:        "empty document",
			doc:         "",
			wantErr:     true,
			errContains: "pattern table is empty",
		},
		{
			name:        "malformed yaml",
			doc:         "NE: [NENE\n",
			wantErr:     true,
			errContains: "failed to unmarshal pattern table",
		},
		{
			name:        "empty code",
			doc:         "NE: [NENE, \"\"]\n",
			wantErr:     true,
			errContains: "invalid pattern table",
		},
		{
			name:        "empty keyword",
			doc:         "\"\": [NENE]\n",
			wantErr:     true,
			errContains: "invalid pattern table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := patterns.Parse([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, table.Len())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("LOTS: [L1, L2]\n"), 0o600))

	table, err := patterns.Load(path)
	require.NoError(t, err)
	assert.True(t, table.Has("LOTS"))

	_, err = patterns.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read pattern table")
}

func TestTable_KeywordsLongestFirst(t *testing.T) {
	table := patterns.New(map[string][]string{
		"E":    {"E"},
		"NE":   {"NE"},
		"NENE": {"NENE"},
		"SE":   {"SE"},
	})
	assert.Equal(t, []string{"NENE", "NE", "SE", "E"}, table.Keywords())
}

func TestTable_IsImmutable(t *testing.T) {
	entries := map[string][]string{"NE": {"NENE"}}
	table := patterns.New(entries)

	entries["NE"][0] = "CHANGED"
	entries["SW"] = []string{"NESW"}

	codes, _ := table.Codes("NE")
	assert.Equal(t, []string{"NENE"}, codes)
	assert.False(t, table.Has("SW"))

	kws := table.Keywords()
	kws[0] = "CHANGED"
	assert.Equal(t, []string{"NE"}, table.Keywords())
}

func TestTable_EmptyKeywords(t *testing.T) {
	table := patterns.New(map[string][]string{
		"NE":  {"NENE"},
		"B":   {},
		"AAA": nil,
	})
	assert.Equal(t, []string{"AAA", "B"}, table.EmptyKeywords())
}
