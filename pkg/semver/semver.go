// SPDX-License-Identifier: MPL-2.0

// Package semver parses and compares the dotted, optionally-prerelease
// version numbers mods declare in their manifests.
package semver

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Ordering is the result of comparing two versions.
type Ordering int

const (
	// Less indicates the left-hand version sorts before the right-hand one.
	Less Ordering = -1
	// Equal indicates the two versions have the same numeric fields and
	// prerelease tags that differ at most in letter case.
	Equal Ordering = 0
	// Greater indicates the left-hand version sorts after the right-hand one.
	Greater Ordering = 1
)

// Version is an immutable, cheaply-copyable semantic version:
// MAJOR.MINOR[.PATCH][-PRERELEASE].
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

// ParseError is returned by Parse when the input does not match the
// accepted version grammar.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid semantic version: %q", e.Input)
}

// Parse accepts MAJOR.MINOR[.PATCH][-PRERELEASE]. A missing PATCH defaults
// to 0. The prerelease tag is everything after the first '-', so a tag may
// itself contain dashes.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, &ParseError{Input: s}
	}

	main := s
	prerelease := ""
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		main = s[:idx]
		prerelease = s[idx+1:]
	}

	parts := strings.Split(main, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, &ParseError{Input: s}
	}

	major, err := parseNonNegative(parts[0])
	if err != nil {
		return Version{}, &ParseError{Input: s}
	}
	minor, err := parseNonNegative(parts[1])
	if err != nil {
		return Version{}, &ParseError{Input: s}
	}
	patch := 0
	if len(parts) == 3 {
		patch, err = parseNonNegative(parts[2])
		if err != nil {
			return Version{}, &ParseError{Input: s}
		}
	}

	if prerelease != "" && !isPrintableASCIINoWhitespace(prerelease) {
		return Version{}, &ParseError{Input: s}
	}

	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: prerelease}, nil
}

// MustParse parses s and panics on failure. Intended for literal versions
// in tests and embedded data, never for untrusted input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical form of v.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}

// Compare orders a relative to b: numeric fields first, then prerelease
// precedence (a version with a prerelease tag is less than the same
// numeric version without one), then ASCII comparison of the tags.
func Compare(a, b Version) Ordering {
	if a.Major != b.Major {
		return cmpInt(a.Major, b.Major)
	}
	if a.Minor != b.Minor {
		return cmpInt(a.Minor, b.Minor)
	}
	if a.Patch != b.Patch {
		return cmpInt(a.Patch, b.Patch)
	}

	aHasPre := a.Prerelease != ""
	bHasPre := b.Prerelease != ""
	switch {
	case aHasPre && !bHasPre:
		return Less
	case !aHasPre && bHasPre:
		return Greater
	case !aHasPre && !bHasPre:
		return Equal
	}

	if strings.EqualFold(a.Prerelease, b.Prerelease) {
		return Equal
	}
	if a.Prerelease < b.Prerelease {
		return Less
	}
	return Greater
}

// IsAtLeast reports whether a is not strictly less than b.
func IsAtLeast(a, b Version) bool {
	return Compare(a, b) != Less
}

// VersionsEqual reports whether a and b have the same numeric fields and
// the same prerelease tag, compared case-insensitively.
func VersionsEqual(a, b Version) bool {
	return Compare(a, b) == Equal
}

func cmpInt(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not a non-negative integer: %q", s)
	}
	return n, nil
}

func isPrintableASCIINoWhitespace(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
