// SPDX-License-Identifier: Apache-2.0

package legal

import "strings"

// allExceptions are substrings that qualify an "all" so it no longer means
// the whole section. "execpt" is a misspelling seen in the source data.
var allExceptions = []string{
	"except",
	"execpt",
	" exc ",
	"fp ",
	"fraction",
	"less",
	"lot",
	"lying",
	"parts",
	"tract",
}

// AllClass is the result of classifying a description against "all".
type AllClass int

const (
	// ClassPartial means the description names part of a section.
	ClassPartial AllClass = iota
	// ClassAll means the description covers the whole section.
	ClassAll
	// ClassAllWithException means the description mentions "all" but
	// qualifies it with an exclusion.
	ClassAllWithException
)

func (c AllClass) String() string {
	switch c {
	case ClassAll:
		return "all"
	case ClassAllWithException:
		return "all_with_exception"
	default:
		return "partial"
	}
}

// Classify combines IsAll and HasAllException into a single result.
func Classify(text string) AllClass {
	switch {
	case IsAll(text):
		return ClassAll
	case HasAllException(text):
		return ClassAllWithException
	default:
		return ClassPartial
	}
}

// IsAll reports whether text stands for the entire section. An empty
// description counts as "all" because the source record did not narrow
// the section down.
func IsAll(text string) bool {
	if text == "" {
		return true
	}

	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "all" {
		return true
	}
	if !strings.Contains(lower, "all ") {
		return false
	}
	return !HasAllException(lower)
}

// HasAllException reports whether text mentions "all" together with one of
// the exception markers, e.g. "All except Lot 3".
func HasAllException(text string) bool {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "all") {
		return false
	}
	for _, marker := range allExceptions {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
