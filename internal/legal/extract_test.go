// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cslb/ldtoolbox-mcp/internal/legal/patterns"
)

func stageTable() *patterns.Table {
	return patterns.New(map[string][]string{
		"NE": {"NENE", "NWNE", "SENE", "SWNE"},
		"E":  {"E"},
		"N":  {"N"},
	})
}

func TestExtractKeywords(t *testing.T) {
	matchers := compileKeywords(stageTable())

	tests := []struct {
		name     string
		text     string
		wantHits []string
		wantRest []string
	}{
		{name: "single keyword", text: "NE", wantHits: []string{"NE"}},
		{name: "every occurrence is a hit", text: "NE and NE", wantHits: []string{"NE", "NE"}, wantRest: []string{"and"}},
		{name: "keyword inside a longer word is ignored", text: "END", wantRest: []string{"END"}},
		{name: "keyword glued to a fraction is ignored", text: "NE1/4", wantRest: []string{"NE1/4"}},
		{name: "punctuation is a boundary", text: "NE,E;N", wantHits: []string{"NE", "E", "N"}, wantRest: []string{",", ";"}},
		{name: "lower case does not match", text: "ne", wantRest: []string{"ne"}},
		{name: "trailing non-ASCII letter joins the token", text: "NEé", wantRest: []string{"NEé"}},
		{name: "leading non-ASCII letter joins the token", text: "éNE", wantRest: []string{"éNE"}},
		{name: "underscore joins the token", text: "NE_1", wantRest: []string{"NE_1"}},
		{name: "separated non-ASCII word", text: "NE é", wantHits: []string{"NE"}, wantRest: []string{"é"}},
		{name: "rejected match does not hide a later one", text: "NEé NE", wantHits: []string{"NE"}, wantRest: []string{"NEé"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, hits := extractKeywords(tt.text, matchers)
			assert.ElementsMatch(t, tt.wantHits, hits)
			assert.Equal(t, tt.wantRest, nonEmptyFields(rest))
		})
	}
}

func TestExtractKeywords_OrderIndependent(t *testing.T) {
	matchers := compileKeywords(stageTable())
	reversed := slices.Clone(matchers)
	slices.Reverse(reversed)

	const text = "N NE E, NE-E N"
	restA, hitsA := extractKeywords(text, matchers)
	restB, hitsB := extractKeywords(text, reversed)

	assert.ElementsMatch(t, hitsA, hitsB)
	assert.Equal(t, nonEmptyFields(restA), nonEmptyFields(restB))
	assert.Len(t, hitsA, 6)
}

func TestExtractFractionals(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     []string
		wantRest []string
	}{
		{name: "two quarters", text: "NE1/4 SW1/4", want: []string{"NE1/4", "SW1/4"}},
		{name: "half", text: "N1/2 of", want: []string{"N1/2"}, wantRest: []string{"of"}},
		{name: "stacked aliquot", text: "SE1/4NE1/4", want: []string{"SE1/4", "NE1/4"}},
		{name: "lower case direction", text: "ne1/4", wantRest: []string{"ne1/4"}},
		{name: "unsupported denominator", text: "NE1/3", wantRest: []string{"NE1/3"}},
		{name: "comma is not a denominator", text: "NE1/,", wantRest: []string{"NE1/,"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, found := extractFractionals(tt.text)
			assert.Equal(t, tt.want, found)
			assert.Equal(t, tt.wantRest, nonEmptyFields(rest))
		})
	}
}

func TestExtractLotRanges(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		maxSpan      int
		wantLots     []int
		wantRejected []string
		wantRest     []string
	}{
		{name: "inclusive range", text: "1-4", maxSpan: 10, wantLots: []int{1, 2, 3, 4}},
		{name: "single lot range", text: "7-7", maxSpan: 10, wantLots: []int{7}},
		{name: "several ranges", text: "Lots 1-2, 5-6", maxSpan: 10, wantLots: []int{1, 2, 5, 6}, wantRest: []string{"Lots", ","}},
		{name: "reversed range is rejected", text: "9-3", maxSpan: 10, wantRejected: []string{"9-3"}},
		{name: "range wider than span is rejected", text: "1-11", maxSpan: 10, wantRejected: []string{"1-11"}},
		{name: "range exactly at span", text: "1-3", maxSpan: 3, wantLots: []int{1, 2, 3}},
		{name: "zero span uses the default", text: "1-12", maxSpan: 0, wantLots: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "zero span still rejects huge ranges", text: "1-20000000", maxSpan: 0, wantRejected: []string{"1-20000000"}},
		{name: "span is capped", text: "0-10000", maxSpan: 1 << 30, wantRejected: []string{"0-10000"}},
		{name: "range ending at max int", text: "9223372036854775806-9223372036854775807", maxSpan: 10, wantLots: []int{9223372036854775806, 9223372036854775807}},
		{name: "overflow is rejected", text: "1-99999999999999999999", maxSpan: 0, wantRejected: []string{"1-99999999999999999999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, lots, rejected := extractLotRanges(tt.text, tt.maxSpan)
			assert.Equal(t, tt.wantLots, lots)
			assert.Equal(t, tt.wantRejected, rejected)
			assert.Equal(t, tt.wantRest, nonEmptyFields(rest))
		})
	}
}

func TestClassifyWords(t *testing.T) {
	lots, keywords, fallOuts := classifyWords("Lot3 NE plus, END 12 ²", stageTable())
	assert.Equal(t, []int{3, 12}, lots)
	assert.Equal(t, []string{"NE"}, keywords)
	assert.Equal(t, []string{"Lot", "plus", "END", "²"}, fallOuts)
}

func TestParse_KeywordGluedToNonASCII(t *testing.T) {
	parser := NewParser(patterns.New(map[string][]string{"NE": {"NENE"}}))

	_, err := parser.Parse("NEé")
	assert.ErrorIs(t, err, ErrUnparseableDescription)

	out, err := parser.Parse("NEé NE")
	assert.NoError(t, err)
	assert.Equal(t, []string{"NENE"}, out.Lookups)
	assert.Equal(t, []string{"NEé"}, out.FallOuts)
}

func nonEmptyFields(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
