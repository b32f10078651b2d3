// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cslb/ldtoolbox-mcp/internal/legal/patterns"
)

var (
	// fractionalPattern matches aliquot fractions such as NE1/4 or N1/2.
	fractionalPattern = regexp.MustCompile(`[NSEW]+1/[24]`)
	lotRangePattern   = regexp.MustCompile(`\d+-\d+`)
	// wordPattern splits letters from digits so "Lot3" yields "Lot" and "3".
	wordPattern = regexp.MustCompile(`\p{L}+|\p{N}+`)
)

// removed replaces every extracted token. A space keeps the neighbouring
// text from fusing into a new token.
const removed = " "

type keywordMatcher struct {
	keyword string
	re      *regexp.Regexp
}

// compileKeywords builds a matcher for every table keyword. Matches are
// filtered to whole tokens by isTokenBoundary.
func compileKeywords(table *patterns.Table) []keywordMatcher {
	keywords := table.Keywords()
	matchers := make([]keywordMatcher, 0, len(keywords))
	for _, kw := range keywords {
		matchers = append(matchers, keywordMatcher{
			keyword: kw,
			re:      regexp.MustCompile(regexp.QuoteMeta(kw)),
		})
	}
	return matchers
}

// extractKeywords removes every whole-token keyword occurrence from text.
// Each occurrence is one hit.
func extractKeywords(text string, matchers []keywordMatcher) (string, []string) {
	var hits []string
	for _, m := range matchers {
		if !strings.Contains(text, m.keyword) {
			continue
		}

		var b strings.Builder
		last := 0
		for _, loc := range m.re.FindAllStringIndex(text, -1) {
			if !isTokenBoundary(text, loc[0], loc[1]) {
				continue
			}
			hits = append(hits, m.keyword)
			b.WriteString(text[last:loc[0]])
			b.WriteString(removed)
			last = loc[1]
		}
		if last == 0 {
			continue
		}
		b.WriteString(text[last:])
		text = b.String()
	}
	return text, hits
}

// isTokenBoundary reports whether text[start:end] has no letter, number or
// underscore directly on either side. It decodes whole runes, so "NEé"
// is one token.
func isTokenBoundary(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// extractFractionals removes directional fractions from text and returns
// them verbatim.
func extractFractionals(text string) (string, []string) {
	found := fractionalPattern.FindAllString(text, -1)
	if len(found) == 0 {
		return text, nil
	}
	return fractionalPattern.ReplaceAllLiteralString(text, removed), found
}

// extractLotRanges removes "<start>-<end>" tokens from text and expands
// them into lot numbers. Reversed ranges, ranges that overflow int and
// ranges spanning maxSpan or more are returned as rejected instead of being
// expanded. maxSpan is clamped by clampLotSpan, so there is always a limit.
func extractLotRanges(text string, maxSpan int) (rest string, lots []int, rejected []string) {
	found := lotRangePattern.FindAllString(text, -1)
	if len(found) == 0 {
		return text, nil, nil
	}
	maxSpan = clampLotSpan(maxSpan)
	for _, tok := range found {
		start, end, ok := splitRange(tok)
		if !ok || end < start || end-start >= maxSpan {
			rejected = append(rejected, tok)
			continue
		}
		// Counting from zero keeps start+i <= end, so a range ending at
		// math.MaxInt cannot wrap.
		for i := range end - start + 1 {
			lots = append(lots, start+i)
		}
	}
	return lotRangePattern.ReplaceAllLiteralString(text, removed), lots, rejected
}

func splitRange(tok string) (int, int, bool) {
	lo, hi, ok := strings.Cut(tok, "-")
	if !ok {
		return 0, 0, false
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, false
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// classifyWords sorts whatever is left into lot numbers, keyword hits and
// fall-out words.
func classifyWords(text string, table *patterns.Table) (lots []int, keywords, fallOuts []string) {
	for _, word := range wordPattern.FindAllString(text, -1) {
		if isDigits(word) {
			if n, err := strconv.Atoi(word); err == nil {
				lots = append(lots, n)
				continue
			}
		} else if table.Has(word) {
			keywords = append(keywords, word)
			continue
		}
		fallOuts = append(fallOuts, word)
	}
	return lots, keywords, fallOuts
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
