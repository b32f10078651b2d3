// SPDX-License-Identifier: Apache-2.0

// Package plss builds the PLSS identifiers and attribute filters used to
// select section polygons for a parsed legal description.
package plss

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultState is the two-letter state prefix of first-division IDs.
const DefaultState = "CO"

// Meridian normalizes a principal meridian number to two digits.
func Meridian(v string) (string, error) {
	return twoDigits(v, "meridian number")
}

// Section normalizes a section number to two digits.
func Section(v string) (string, error) {
	return twoDigits(v, "section number")
}

// Township normalizes a township such as "4 N" or "12.5S" into the NNNFD
// form: three-digit number, fraction flag (0 or 2), direction.
func Township(v string) (string, error) {
	return axis(v, "township", 'n', 's')
}

// Range normalizes a range such as "68W" or "3.5 E" into the NNNFD form.
func Range(v string) (string, error) {
	return axis(v, "range", 'e', 'w')
}

// FirstDivision assembles the first-division ID of a section. Every field
// is checked; the error lists each problem separated by "; ".
func FirstDivision(state, meridian, township, rng, section string) (string, error) {
	if state == "" {
		state = DefaultState
	}

	var errs []string
	check := func(f func(string) (string, error), v string) string {
		out, err := f(v)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return out
	}

	mer := check(Meridian, meridian)
	twp := check(Township, township)
	rge := check(Range, rng)
	sec := check(Section, section)

	if len(errs) > 0 {
		return "", errors.New(strings.Join(errs, "; "))
	}
	return fmt.Sprintf("%s%s%s%s0SN%s0", strings.ToUpper(state), mer, twp, rge, sec), nil
}

func twoDigits(v, field string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("empty value in %s", field)
	}
	if !isDigits(v) {
		return "", fmt.Errorf("improper value in %s: %q", field, v)
	}
	if len(v) > 2 {
		return "", fmt.Errorf("%s greater than two digits: %q", field, v)
	}
	return zeroPad(v, 2), nil
}

// axis handles townships (north/south) and ranges (east/west). When both
// directions appear the first one given wins, matching how the source
// records were keyed.
func axis(v, field string, first, second byte) (string, error) {
	s := strings.ReplaceAll(strings.ToLower(v), " ", "")
	if s == "" {
		return "", fmt.Errorf("empty string in %s data", field)
	}

	var dir byte
	switch {
	case strings.IndexByte(s, first) >= 0:
		dir = first
	case strings.IndexByte(s, second) >= 0:
		dir = second
	default:
		return "", fmt.Errorf("no directional value in %s data: %q", field, v)
	}
	s = strings.ReplaceAll(s, string(dir), "")

	fraction := "0"
	if strings.Contains(s, ".5") {
		fraction = "2"
		s = strings.ReplaceAll(s, ".5", "")
	}

	if !isDigits(s) {
		return "", fmt.Errorf("unknown characters in %s data: %q", field, v)
	}
	if len(s) > 3 {
		return "", fmt.Errorf("%s greater than three digits: %q", field, v)
	}
	return zeroPad(s, 3) + fraction + strings.ToUpper(string(dir)), nil
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
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
