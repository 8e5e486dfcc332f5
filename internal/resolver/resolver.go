// SPDX-License-Identifier: MPL-2.0

// Package resolver exposes the three functions that make up the mod
// resolver's entire public surface (§6 of the specification this package
// implements): discover manifests, validate them against the host and the
// compatibility database, and order the survivors by dependency.
//
// Each function is a thin composition over the lower-level packages that
// actually do the work — internal/scan, pkg/manifest, internal/metadata,
// internal/validate, and internal/depgraph — so a caller never needs to
// import those packages directly.
package resolver

import (
	"modresolve/internal/compatdb"
	"modresolve/internal/depgraph"
	"modresolve/internal/metadata"
	"modresolve/internal/scan"
	"modresolve/internal/validate"
	"modresolve/pkg/manifest"
	"modresolve/pkg/semver"
)

// ReadManifests walks root for candidate mod folders, decodes each one's
// manifest through parser, and wraps every result in a ModMetadata record.
// It never fails in aggregate: a root that does not exist, cannot be read,
// or contains nothing yields an empty slice, and any per-candidate failure becomes a
// Failed record rather than an error returned to the caller. A nil parser
// defaults to manifest.Parse.
func ReadManifests(root string, parser manifest.Parser, db *compatdb.DB) ([]*metadata.ModMetadata, error) {
	if parser == nil {
		parser = manifest.Parse
	}

	entries, err := scan.Scan(root, scan.MaxScanDepth, parser)
	if err != nil {
		// An unreadable root yields an empty result, not an error.
		return []*metadata.ModMetadata{}, nil
	}

	records := make([]*metadata.ModMetadata, 0, len(entries))
	for _, entry := range entries {
		var rec *compatdb.ModDataRecord
		if entry.Manifest != nil && db != nil {
			rec = db.Lookup(entry.Manifest.UniqueID, entry.Manifest.Version)
		}
		records = append(records, metadata.New(entry, rec))
	}
	return records, nil
}

// ValidateManifests runs the compatibility, API-floor, entry-file, and
// duplicate-id checks over records, mutating any that fail in place.
func ValidateManifests(records []*metadata.ModMetadata, hostAPIVersion semver.Version, getUpdateURL func(string) string) {
	validate.Validate(records, hostAPIVersion, getUpdateURL)
}

// ProcessDependencies resolves dependency references among records, fails
// anything unsatisfiable or cyclic, and returns every record (Failed and
// Found alike) in a new order: the Failed preamble first, then a
// topological ordering of the records still Found, then the records
// this pass itself failed, in their relative input order.
func ProcessDependencies(records []*metadata.ModMetadata, db *compatdb.DB) []*metadata.ModMetadata {
	return depgraph.ProcessDependencies(records, db)
}
