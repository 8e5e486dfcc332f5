// SPDX-License-Identifier: MPL-2.0

// Package scan walks a mods root directory and locates the manifest
// document belonging to each candidate mod folder, descending into
// nested folders when a candidate does not carry one directly.
package scan

import (
	"os"
	"path/filepath"
	"sort"

	"modresolve/pkg/manifest"
)

// MaxScanDepth bounds how many levels the scanner will descend below a
// top-level candidate folder while looking for a single reachable
// manifest. The source scanner used a loose, undocumented heuristic;
// this is the small fixed bound chosen in its place.
const MaxScanDepth = 4

// ErrNoManifestFound is the error string recorded on a ScanEntry whose
// candidate folder has no manifest reachable within MaxScanDepth.
const ErrNoManifestFound = "no manifest found"

// ScanEntry is one candidate mod folder discovered under the root,
// either resolved to a manifest or carrying the reason it could not be.
type ScanEntry struct {
	DirectoryPath string
	Manifest      *manifest.Manifest
	Error         string
}

// Scan enumerates root's immediate subdirectories and resolves each to
// a manifest via parse, descending into nested folders up to maxDepth
// when a candidate does not carry a manifest directly. A missing or
// empty root yields an empty, non-error result.
func Scan(root string, maxDepth int, parse manifest.Parser) ([]ScanEntry, error) {
	candidates, err := immediateSubdirs(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []ScanEntry
	for _, candidate := range candidates {
		found := findManifestDirs(candidate, maxDepth, parse)
		switch len(found) {
		case 0:
			entries = append(entries, ScanEntry{DirectoryPath: candidate, Error: ErrNoManifestFound})
		default:
			for _, dir := range found {
				entries = append(entries, resolveEntry(dir, parse))
			}
		}
	}
	return entries, nil
}

func resolveEntry(dir string, parse manifest.Parser) ScanEntry {
	m, err := parse(dir)
	if err != nil {
		return ScanEntry{DirectoryPath: dir, Error: err.Error()}
	}
	return ScanEntry{DirectoryPath: dir, Manifest: m}
}

// findManifestDirs returns every directory reachable from dir (dir
// itself, or a bounded descent into its subdirectories) that directly
// contains a manifest document. A dir carrying one directly always
// short-circuits to itself; only when it does not does the search
// descend, and only down to depthRemaining levels.
func findManifestDirs(dir string, depthRemaining int, parse manifest.Parser) []string {
	if hasManifest(dir, parse) {
		return []string{dir}
	}
	if depthRemaining <= 0 {
		return nil
	}

	subs, err := immediateSubdirs(dir)
	if err != nil {
		return nil
	}

	var found []string
	for _, s := range subs {
		found = append(found, findManifestDirs(s, depthRemaining-1, parse)...)
	}
	return found
}

func hasManifest(dir string, parse manifest.Parser) bool {
	m, err := parse(dir)
	if err == nil {
		_ = m
		return true
	}
	var perr *manifest.ParseError
	if isMissing(err, &perr) {
		return false
	}
	// Any other parse failure (Malformed, Incomplete, BadVersion) still
	// means a manifest document is present here; treat it as found so
	// the failure surfaces from resolveEntry instead of being masked by
	// a false "no manifest found".
	return true
}

func isMissing(err error, perr **manifest.ParseError) bool {
	if e, ok := err.(*manifest.ParseError); ok {
		*perr = e
		return e.Kind == manifest.Missing
	}
	return false
}

func immediateSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var subs []string
	for _, e := range entries {
		if e.IsDir() {
			subs = append(subs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(subs)
	return subs, nil
}
