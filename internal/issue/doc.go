// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines an error type that carries the operation that failed, the
// resource involved, and remediation suggestions, so the CLI's outer collaborators
// (config loading, compatibility DB loading) can report failures without exposing
// the resolver core's plain-string per-record errors to a stack trace.
package issue
