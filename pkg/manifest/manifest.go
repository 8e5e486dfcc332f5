// SPDX-License-Identifier: MPL-2.0

// Package manifest turns a mod folder's manifest document into a typed
// Manifest value, preserving every field the recognized schema does not
// consume.
package manifest

import (
	"fmt"

	"modresolve/pkg/semver"
)

// ErrorKind classifies why a manifest failed to parse.
type ErrorKind string

const (
	// Missing means the folder contains no recognized manifest file.
	Missing ErrorKind = "missing"
	// Malformed means the manifest file does not decode as a mapping of
	// string keys.
	Malformed ErrorKind = "malformed"
	// Incomplete means a required field is missing or empty.
	Incomplete ErrorKind = "incomplete"
	// BadVersion means a version field failed to parse.
	BadVersion ErrorKind = "bad_version"
)

// Parser locates and decodes the manifest document in dirPath, the
// signature Parse itself satisfies. Callers that need to inject a
// stub or alternate parser (tests, a caller wiring its own manifest
// source) pass one of these instead of depending on Parse directly.
type Parser func(dirPath string) (*Manifest, error)

// ParseError describes why Parse could not produce a Manifest.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Dependency is a single entry in a manifest's dependencies list.
type Dependency struct {
	UniqueID       string
	MinimumVersion *semver.Version
	Required       bool
}

// ContentPackRef names the mod a content pack extends.
type ContentPackRef struct {
	UniqueID string
}

// Manifest is the fully-parsed, typed contents of a mod's manifest
// document.
type Manifest struct {
	Name              string
	Author            string
	Description       string
	UniqueID          string
	Version           semver.Version
	EntryFile         string
	MinimumAPIVersion *semver.Version
	Dependencies      []Dependency
	ContentPackFor    *ContentPackRef
	// ExtraFields preserves every top-level document key that does not
	// correspond to a recognized field, keyed by its original casing.
	ExtraFields map[string]any
}

// IsContentPack reports whether this manifest declares a content pack
// (it targets another mod instead of shipping an entry file).
func (m *Manifest) IsContentPack() bool {
	return m.ContentPackFor != nil
}
