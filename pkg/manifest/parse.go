// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"modresolve/internal/caseutil"
	"modresolve/pkg/semver"
)

// Parse reads and decodes the manifest document in dirPath, producing a
// typed Manifest. Every top-level key the schema does not recognize is
// preserved verbatim in ExtraFields.
func Parse(dirPath string) (*Manifest, error) {
	path, ok := locate(dirPath)
	if !ok {
		return nil, newError(Missing, "no manifest file found in %s", dirPath)
	}

	doc, err := decodeDocument(path)
	if err != nil {
		return nil, err
	}

	m := &Manifest{ExtraFields: map[string]any{}}
	hasVersion := false

	for key, value := range doc {
		switch caseutil.Key(key) {
		case "name":
			m.Name, _ = value.(string)
		case "author":
			m.Author, _ = value.(string)
		case "description":
			m.Description, _ = value.(string)
		case "uniqueid":
			m.UniqueID, _ = value.(string)
		case "version":
			s, _ := value.(string)
			v, err := semver.Parse(s)
			if err != nil {
				return nil, newError(BadVersion, "manifest %s has an invalid version %q: %v", path, s, err)
			}
			m.Version = v
			hasVersion = true
		case "entryfile":
			m.EntryFile, _ = value.(string)
		case "minimumapiversion":
			s, _ := value.(string)
			v, err := semver.Parse(s)
			if err != nil {
				return nil, newError(BadVersion, "manifest %s has an invalid minimum API version %q: %v", path, s, err)
			}
			m.MinimumAPIVersion = &v
		case "dependencies":
			deps, err := parseDependencies(path, value)
			if err != nil {
				return nil, err
			}
			m.Dependencies = deps
		case "contentpackfor":
			ref, err := parseContentPackFor(path, value)
			if err != nil {
				return nil, err
			}
			m.ContentPackFor = ref
		default:
			m.ExtraFields[key] = value
		}
	}

	if err := requireFields(path, m, hasVersion); err != nil {
		return nil, err
	}

	return m, nil
}

// requireFields enforces the manifest's mandatory fields: Name, UniqueID
// and Version always; EntryFile only for mods that are not content packs,
// since a content pack has no entry file to declare.
func requireFields(path string, m *Manifest, hasVersion bool) error {
	if m.Name == "" {
		return newError(Incomplete, "manifest %s is missing required field name", path)
	}
	if m.UniqueID == "" {
		return newError(Incomplete, "manifest %s is missing required field uniqueId", path)
	}
	if !hasVersion {
		return newError(Incomplete, "manifest %s is missing required field version", path)
	}
	if m.EntryFile == "" && !m.IsContentPack() {
		return newError(Incomplete, "manifest %s is missing required field entryFile", path)
	}
	return nil
}

func parseDependencies(path string, value any) ([]Dependency, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, newError(Malformed, "manifest %s has a dependencies field that is not a list", path)
	}

	deps := make([]Dependency, 0, len(items))
	for _, item := range items {
		entry, ok := asStringMap(item)
		if !ok {
			return nil, newError(Malformed, "manifest %s has a dependency entry that is not a mapping", path)
		}

		dep := Dependency{Required: true}
		for key, v := range entry {
			switch caseutil.Key(key) {
			case "uniqueid":
				dep.UniqueID, _ = v.(string)
			case "minimumversion":
				s, _ := v.(string)
				if s != "" {
					ver, err := semver.Parse(s)
					if err != nil {
						return nil, newError(BadVersion, "manifest %s has an invalid dependency version %q: %v", path, s, err)
					}
					dep.MinimumVersion = &ver
				}
			case "isrequired":
				if b, ok := v.(bool); ok {
					dep.Required = b
				}
			}
		}
		if dep.UniqueID == "" {
			return nil, newError(Incomplete, "manifest %s has a dependency entry missing uniqueId", path)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func parseContentPackFor(path string, value any) (*ContentPackRef, error) {
	entry, ok := asStringMap(value)
	if !ok {
		return nil, newError(Malformed, "manifest %s has a contentPackFor field that is not a mapping", path)
	}
	ref := &ContentPackRef{}
	for key, v := range entry {
		if caseutil.Key(key) == "uniqueid" {
			ref.UniqueID, _ = v.(string)
		}
	}
	if ref.UniqueID == "" {
		return nil, newError(Incomplete, "manifest %s has a contentPackFor field missing uniqueId", path)
	}
	return ref, nil
}
