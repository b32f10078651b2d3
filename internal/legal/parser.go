// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"maps"
	"slices"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/cslb/ldtoolbox-mcp/internal/legal/patterns"
)

const (
	// DefaultMaxLotSpan bounds how many lots a single "<start>-<end>" range
	// may expand into.
	DefaultMaxLotSpan = 200
	// MaxLotSpanLimit is the largest lot span a Parser accepts.
	MaxLotSpanLimit = 10000
)

// clampLotSpan maps n into [1, MaxLotSpanLimit]. Zero or less selects
// DefaultMaxLotSpan.
func clampLotSpan(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxLotSpan
	case n > MaxLotSpanLimit:
		return MaxLotSpanLimit
	default:
		return n
	}
}

// Parser turns legal descriptions into lookup codes. It is safe for
// concurrent use; the pattern table is never modified.
type Parser struct {
	table      *patterns.Table
	keywords   []keywordMatcher
	maxLotSpan int
	log        *zap.Logger

	// warned records keywords already reported as expanding to nothing.
	warned sync.Map
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for configuration warnings.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMaxLotSpan overrides DefaultMaxLotSpan. Zero or less keeps the
// default; values above MaxLotSpanLimit are capped.
func WithMaxLotSpan(n int) Option {
	return func(p *Parser) {
		p.maxLotSpan = clampLotSpan(n)
	}
}

// NewParser compiles table into a Parser.
func NewParser(table *patterns.Table, opts ...Option) *Parser {
	p := &Parser{
		table:      table,
		keywords:   compileKeywords(table),
		maxLotSpan: DefaultMaxLotSpan,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the pattern table the parser was built with.
func (p *Parser) Table() *patterns.Table {
	return p.table
}

// Parse resolves text to an Outcome. A description meaning the whole
// section yields the single lookup "ALL" without running extraction.
// "All except ..." phrases and descriptions with no resolvable code fail
// with an error matching ErrUnparseableDescription.
func (p *Parser) Parse(text string) (Outcome, error) {
	switch Classify(text) {
	case ClassAll:
		out := newOutcome()
		out.Lookups = append(out.Lookups, AllLookup)
		return out, nil
	case ClassAllWithException:
		return Outcome{}, &DescriptionError{Description: text, Reason: "all with exception needs manual review"}
	}

	ext := p.extract(Normalize(text))

	out := newOutcome()
	out.Lookups = p.aggregate(ext.keywords, ext.lots)
	out.Lots = append(out.Lots, ext.lots...)
	out.Fractionals = append(out.Fractionals, ext.fractionals...)
	out.FallOuts = append(out.FallOuts, ext.fallOuts...)

	if len(out.Lookups) == 0 {
		return Outcome{}, &DescriptionError{Description: text, Reason: "no lookup codes found"}
	}
	return out, nil
}

type extraction struct {
	keywords    []string
	fractionals []string
	lots        []int
	fallOuts    []string
}

// extract runs the four stages in order, each on the text the previous
// stage left behind.
func (p *Parser) extract(text string) extraction {
	var ext extraction

	rest, hits := extractKeywords(text, p.keywords)
	ext.keywords = append(ext.keywords, hits...)

	rest, fractionals := extractFractionals(rest)
	ext.fractionals = append(ext.fractionals, fractionals...)

	rest, lots, rejected := extractLotRanges(rest, p.maxLotSpan)
	ext.lots = append(ext.lots, lots...)

	wordLots, wordKeywords, fallOuts := classifyWords(rest, p.table)
	ext.lots = append(ext.lots, wordLots...)
	ext.keywords = append(ext.keywords, wordKeywords...)
	ext.fallOuts = append(ext.fallOuts, rejected...)
	ext.fallOuts = append(ext.fallOuts, fallOuts...)

	return ext
}

// aggregate expands keywords and lots into a sorted, deduplicated code list.
func (p *Parser) aggregate(keywords []string, lots []int) []string {
	codes := make(map[string]struct{})
	for _, kw := range keywords {
		expansion, _ := p.table.Codes(kw)
		if len(expansion) == 0 {
			p.warnEmpty(kw)
			continue
		}
		for _, code := range expansion {
			if code != "" {
				codes[code] = struct{}{}
			}
		}
	}
	for _, lot := range lots {
		codes[strconv.Itoa(lot)] = struct{}{}
	}
	return slices.Sorted(maps.Keys(codes))
}

func (p *Parser) warnEmpty(kw string) {
	if _, loaded := p.warned.LoadOrStore(kw, struct{}{}); loaded {
		return
	}
	p.log.Warn("pattern keyword expands to no lookup codes", zap.String("keyword", kw))
}
