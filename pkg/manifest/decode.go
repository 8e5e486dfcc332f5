// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// candidateFiles lists the recognized manifest file names in the order
// they are probed. The first one present in a folder wins.
var candidateFiles = []string{
	"manifest.json",
	"manifest.yaml",
	"manifest.yml",
	"manifest.toml",
}

// locate finds the manifest document within dirPath, if any.
func locate(dirPath string) (path string, ok bool) {
	for _, name := range candidateFiles {
		candidate := filepath.Join(dirPath, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// decodeDocument reads path and decodes it into a generic string-keyed
// map, dispatching on file extension.
func decodeDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(Malformed, "failed to read manifest %s: %v", path, err)
	}

	var raw any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, newError(Malformed, "manifest %s is not valid JSON: %v", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, newError(Malformed, "manifest %s is not valid YAML: %v", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, newError(Malformed, "manifest %s is not valid TOML: %v", path, err)
		}
	default:
		return nil, newError(Malformed, "manifest %s has an unrecognized extension", path)
	}

	doc, ok := asStringMap(raw)
	if !ok {
		return nil, newError(Malformed, "manifest %s does not decode as a mapping of string keys", path)
	}
	return doc, nil
}

// asStringMap normalizes a decoded document root into map[string]any,
// accepting the map[any]any shape some YAML decoders may still produce.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
