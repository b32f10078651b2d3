// SPDX-License-Identifier: Apache-2.0

// Package legal parses free-form PLSS legal descriptions into the
// second-division lookup codes used to select section polygons.
package legal

import (
	"errors"
	"fmt"
)

// AllLookup is the lookup code returned when a description covers the
// whole section.
const AllLookup = "ALL"

// ErrUnparseableDescription is returned when a description cannot be
// resolved to any lookup code, or is an "all except ..." phrase that has
// to go to manual review.
var ErrUnparseableDescription = errors.New("unable to parse 2nd division number for this legal description")

// DescriptionError carries the description that failed to parse.
// It matches ErrUnparseableDescription with errors.Is.
type DescriptionError struct {
	Description string
	Reason      string
}

func (e *DescriptionError) Error() string {
	return fmt.Sprintf("%s: %s (%q)", ErrUnparseableDescription.Error(), e.Reason, e.Description)
}

func (e *DescriptionError) Unwrap() error {
	return ErrUnparseableDescription
}

// Outcome is the parse result for one description.
type Outcome struct {
	// Lookups holds the deduplicated, sorted lookup codes.
	Lookups []string `json:"lookups"`
	// Lots holds the lot numbers found, in the order they were found.
	Lots []int `json:"lots"`
	// Fractionals holds directional fractions such as NE1/4 that were
	// recognised but not expanded.
	Fractionals []string `json:"fractionals"`
	// FallOuts holds words that matched nothing.
	FallOuts []string `json:"fall_outs"`
}

func newOutcome() Outcome {
	return Outcome{
		Lookups:     []string{},
		Lots:        []int{},
		Fractionals: []string{},
		FallOuts:    []string{},
	}
}

// IsAll reports whether the outcome selects the whole section.
func (o Outcome) IsAll() bool {
	return len(o.Lookups) == 1 && o.Lookups[0] == AllLookup
}

// NeedsReview reports whether the outcome carries audit data a person
// should reconcile.
func (o Outcome) NeedsReview() bool {
	return len(o.Fractionals) > 0 || len(o.FallOuts) > 0
}
