// SPDX-License-Identifier: MPL-2.0

// Package validate implements the compatibility, API-floor, entry-file,
// and duplicate-id checks the resolver runs over a batch of mod records
// before dependency resolution.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"modresolve/internal/caseutil"
	"modresolve/internal/metadata"
	"modresolve/pkg/semver"
)

// Validate mutates records in place, failing any that violate a
// compatibility, host API floor, entry-file, or duplicate-id rule.
// Records already Failed on entry are left untouched.
func Validate(records []*metadata.ModMetadata, apiVersion semver.Version, getUpdateURL func(string) string) {
	for _, r := range records {
		if r.Status() != metadata.Found {
			continue
		}
		checkCompatibility(r, getUpdateURL)
		if r.Status() != metadata.Found {
			continue
		}
		checkAPIFloor(r, apiVersion)
		if r.Status() != metadata.Found {
			continue
		}
		checkEntryFile(r)
	}

	checkDuplicateIDs(records)
}

func checkCompatibility(r *metadata.ModMetadata, getUpdateURL func(string) string) {
	rec := r.DataRecord()
	if rec == nil {
		return
	}
	if rec.Status != "AssumeBroken" && rec.Status != "Obsolete" {
		return
	}

	url := rec.AlternativeURL
	if url == "" && getUpdateURL != nil {
		url = getUpdateURL(r.Manifest().UniqueID)
	}

	msg := fmt.Sprintf("broken: %s is marked %s", r.DisplayName(), rec.Status)
	if url != "" {
		msg = fmt.Sprintf("%s, see %s", msg, url)
	}
	r.SetStatus(metadata.Failed, msg)
}

func checkAPIFloor(r *metadata.ModMetadata, apiVersion semver.Version) {
	m := r.Manifest()
	if m.MinimumAPIVersion == nil {
		return
	}
	if semver.Compare(*m.MinimumAPIVersion, apiVersion) != semver.Greater {
		return
	}
	r.SetStatus(metadata.Failed, fmt.Sprintf(
		"needs newer SMAPI version: %s requires %s, host is running %s",
		r.DisplayName(), m.MinimumAPIVersion, apiVersion))
}

func checkEntryFile(r *metadata.ModMetadata) {
	m := r.Manifest()
	if m.IsContentPack() {
		if m.EntryFile != "" {
			r.SetStatus(metadata.Failed, fmt.Sprintf(
				"missing DLL: %s is a content pack and must not declare an entry file", r.DisplayName()))
		}
		return
	}

	path := filepath.Join(r.DirectoryPath(), m.EntryFile)
	if _, err := os.Stat(path); err != nil {
		r.SetStatus(metadata.Failed, fmt.Sprintf(
			"missing DLL: %s does not exist for %s", m.EntryFile, r.DisplayName()))
	}
}

func checkDuplicateIDs(records []*metadata.ModMetadata) {
	groups := map[string][]*metadata.ModMetadata{}
	for _, r := range records {
		if r.Status() != metadata.Found {
			continue
		}
		key := caseutil.Key(r.Manifest().UniqueID)
		groups[key] = append(groups[key], r)
	}

	for _, group := range groups {
		if len(group) <= 1 {
			continue
		}
		folders := make([]string, len(group))
		for i, r := range group {
			folders[i] = r.DirectoryPath()
		}
		msg := fmt.Sprintf("duplicate unique ID: %s found in %s",
			group[0].Manifest().UniqueID, strings.Join(folders, ", "))
		for _, r := range group {
			r.SetStatus(metadata.Failed, msg)
		}
	}
}
