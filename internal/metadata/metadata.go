// SPDX-License-Identifier: MPL-2.0

// Package metadata holds the mutable per-mod record the resolver
// pipeline passes from stage to stage: the single object C3 creates,
// C6 validates, and C7 orders.
package metadata

import (
	"modresolve/internal/caseutil"
	"modresolve/internal/compatdb"
	"modresolve/internal/output"
	"modresolve/internal/scan"
	"modresolve/pkg/manifest"
)

// Status is a ModMetadata's lifecycle state. It transitions only
// Found→Failed, never back.
type Status int

const (
	// Found means the manifest parsed successfully and no later stage
	// has rejected the record.
	Found Status = iota
	// Failed means some stage rejected the record; Error explains why.
	Failed
)

// ModMetadata is the single mutable record the resolver manipulates.
// All other components consume and return immutable values.
type ModMetadata struct {
	directoryPath string
	displayName   string
	manifest      *manifest.Manifest
	dataRecord    *compatdb.ModDataRecord

	status Status
	err    string

	dependencies []*ModMetadata
}

// New constructs a ModMetadata from a scan entry and its optional
// compatibility record. A scan entry that failed to parse yields a
// record created directly in the Failed state.
func New(entry scan.ScanEntry, dataRecord *compatdb.ModDataRecord) *ModMetadata {
	m := &ModMetadata{
		directoryPath: entry.DirectoryPath,
		manifest:      entry.Manifest,
		dataRecord:    dataRecord,
	}

	if entry.Manifest != nil {
		m.displayName = entry.Manifest.Name
		m.status = Found
	} else {
		m.displayName = entry.DirectoryPath
		m.status = Failed
		m.err = entry.Error
	}
	return m
}

// SetStatus transitions the record. Only Failed is accepted; the
// transition is idempotent, so a record already Failed keeps its
// original message and later calls are dropped with a debug log
// instead of overwriting it.
func (m *ModMetadata) SetStatus(status Status, message string) {
	if status != Failed {
		return
	}
	if m.status == Failed {
		output.Debug("dropping duplicate failure", "mod", m.displayName, "existing", m.err, "dropped", message)
		return
	}
	m.status = Failed
	m.err = message
}

// HasID reports whether this record's manifest declares id, compared
// case-insensitively. A record with no manifest never matches.
func (m *ModMetadata) HasID(id string) bool {
	if m.manifest == nil {
		return false
	}
	return caseutil.Equal(m.manifest.UniqueID, id)
}

// Status returns the record's current lifecycle state.
func (m *ModMetadata) Status() Status { return m.status }

// Error returns the failure message, or "" if the record is Found.
func (m *ModMetadata) Error() string { return m.err }

// DirectoryPath returns the folder this record was discovered in.
func (m *ModMetadata) DirectoryPath() string { return m.directoryPath }

// DisplayName returns the manifest's declared name, or the directory
// path when there is no manifest to name it.
func (m *ModMetadata) DisplayName() string { return m.displayName }

// Manifest returns the parsed manifest, or nil if parsing failed.
func (m *ModMetadata) Manifest() *manifest.Manifest { return m.manifest }

// DataRecord returns the matching compatibility DB entry, or nil.
func (m *ModMetadata) DataRecord() *compatdb.ModDataRecord { return m.dataRecord }

// Dependencies returns the resolved dependency records C7 assigned.
func (m *ModMetadata) Dependencies() []*ModMetadata { return m.dependencies }

// SetDependencies replaces the resolved dependency list. Called only
// by C7 during dependency resolution.
func (m *ModMetadata) SetDependencies(deps []*ModMetadata) { m.dependencies = deps }
