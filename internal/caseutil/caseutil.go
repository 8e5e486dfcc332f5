// SPDX-License-Identifier: MPL-2.0

// Package caseutil provides the case-insensitive comparison key used
// everywhere a mod's unique id needs folding without discarding the
// source casing used for display.
package caseutil

import "golang.org/x/text/cases"

var folder = cases.Fold()

// Key returns the comparison key for s: fold s for case-insensitive
// lookups while leaving the original string untouched for display.
func Key(s string) string {
	return folder.String(s)
}

// Equal reports whether a and b are equal once folded.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
