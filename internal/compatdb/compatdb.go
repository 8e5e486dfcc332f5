// SPDX-License-Identifier: MPL-2.0

// Package compatdb loads the bundled compatibility document that tells
// the resolver which mods are known-broken, obsolete, or carry an
// update link, and answers lookups against it by id and version.
package compatdb

import (
	_ "embed"
	"os"
	"strings"

	"modresolve/internal/caseutil"
	"modresolve/pkg/cueutil"
	"modresolve/pkg/semver"
)

//go:embed compatdb_schema.cue
var schemaBytes []byte

//go:embed compatdb_data.cue
var dataBytes []byte

// Status is the compatibility judgment a bundled entry carries.
type Status string

const (
	AssumedOK    Status = "AssumedOK"
	AssumeBroken Status = "AssumeBroken"
	Obsolete     Status = "Obsolete"
)

// ModDataRecord is the compatibility verdict for a mod id, applicable
// to versions at or below StatusUpperVersion when it is set.
type ModDataRecord struct {
	Status             Status
	AlternativeURL     string
	StatusUpperVersion *semver.Version
}

// document is the shape decoded straight off the CUE document.
type document struct {
	Entries []struct {
		UniqueID           string `json:"uniqueId"`
		Status             string `json:"status"`
		AlternativeURL     string `json:"alternativeUrl"`
		StatusUpperVersion string `json:"statusUpperVersion"`
	} `json:"entries"`
	UpdateKeys map[string]string `json:"updateKeys"`
}

type entry struct {
	idKey  string
	record ModDataRecord
}

// DB is the immutable, in-memory compatibility database. The zero value
// is not usable; construct with Load.
type DB struct {
	entries    []entry
	updateKeys map[string]string
}

// Load parses the bundled compatibility document once and returns an
// immutable DB. It performs no network or filesystem I/O beyond reading
// the embedded document.
func Load() (*DB, error) {
	return decode(dataBytes, "compatdb.cue")
}

// LoadFromFile parses a compatibility document at path instead of the
// bundled one, validated against the same schema. A host that maintains
// its own override list points compatibility_db_path at it.
func LoadFromFile(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data, path)
}

func decode(data []byte, filename string) (*DB, error) {
	result, err := cueutil.ParseAndDecode[document](schemaBytes, data, "#Document",
		cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}

	db := &DB{updateKeys: result.Value.UpdateKeys}
	for _, raw := range result.Value.Entries {
		rec := ModDataRecord{
			Status:         Status(raw.Status),
			AlternativeURL: raw.AlternativeURL,
		}
		if raw.StatusUpperVersion != "" {
			v, err := semver.Parse(raw.StatusUpperVersion)
			if err != nil {
				return nil, err
			}
			rec.StatusUpperVersion = &v
		}
		db.entries = append(db.entries, entry{idKey: caseutil.Key(raw.UniqueID), record: rec})
	}
	return db, nil
}

// Lookup returns the ModDataRecord applying to uniqueId at version, or
// nil if no bundled entry covers it. Matching is case-insensitive on
// id and inclusive on the entry's declared version range.
func (db *DB) Lookup(uniqueID string, version semver.Version) *ModDataRecord {
	key := caseutil.Key(uniqueID)
	for _, e := range db.entries {
		if e.idKey != key {
			continue
		}
		if e.record.StatusUpperVersion != nil && semver.Compare(version, *e.record.StatusUpperVersion) == semver.Greater {
			continue
		}
		rec := e.record
		return &rec
	}
	return nil
}

// GetUpdateURL returns the update link bundled for key, matched
// case-insensitively, or the empty string if none is known.
func (db *DB) GetUpdateURL(key string) string {
	target := caseutil.Key(key)
	for k, v := range db.updateKeys {
		if caseutil.Key(k) == target {
			return v
		}
	}
	return ""
}

// String renders the status for use in a diagnostic message.
func (s Status) String() string {
	return strings.TrimSpace(string(s))
}
