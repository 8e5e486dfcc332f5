// SPDX-License-Identifier: MPL-2.0

package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modresolve/internal/metadata"
	"modresolve/internal/scan"
	"modresolve/pkg/manifest"
	"modresolve/pkg/semver"
)

func found(id, version string, deps ...manifest.Dependency) *metadata.ModMetadata {
	return metadata.New(scan.ScanEntry{
		DirectoryPath: "/mods/" + id,
		Manifest: &manifest.Manifest{
			Name:         id,
			UniqueID:     id,
			Version:      semver.MustParse(version),
			EntryFile:    "entry.dll",
			Dependencies: deps,
		},
	}, nil)
}

func names(records []*metadata.ModMetadata) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.DisplayName()
	}
	return out
}

func requiredDep(id string) manifest.Dependency {
	return manifest.Dependency{UniqueID: id, Required: true}
}

func TestProcessDependenciesSimpleChain(t *testing.T) {
	a := found("A", "1.0.0")
	b := found("B", "1.0.0", requiredDep("A"))
	c := found("C", "1.0.0", requiredDep("B"))

	out := ProcessDependencies([]*metadata.ModMetadata{c, a, b}, nil)

	assert.Equal(t, []string{"A", "B", "C"}, names(out))
	for _, r := range out {
		assert.Equal(t, metadata.Found, r.Status())
	}
}

func TestProcessDependenciesDiamond(t *testing.T) {
	a := found("A", "1.0.0")
	b := found("B", "1.0.0", requiredDep("A"))
	c := found("C", "1.0.0", requiredDep("B"))
	d := found("D", "1.0.0", requiredDep("C"))
	e := found("E", "1.0.0", requiredDep("B"))
	f := found("F", "1.0.0", requiredDep("C"), requiredDep("E"))

	out := ProcessDependencies([]*metadata.ModMetadata{c, a, b, d, f, e}, nil)

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, names(out))
}

func TestProcessDependenciesCycle(t *testing.T) {
	a := found("A", "1.0.0")
	b := found("B", "1.0.0", requiredDep("A"))
	c := found("C", "1.0.0", requiredDep("B"), requiredDep("D"))
	d := found("D", "1.0.0", requiredDep("E"))
	e := found("E", "1.0.0", requiredDep("C"))

	out := ProcessDependencies([]*metadata.ModMetadata{c, a, b, d, e}, nil)

	require.Len(t, out, 5)
	assert.Equal(t, "A", out[0].DisplayName())
	assert.Equal(t, "B", out[1].DisplayName())
	assert.Equal(t, metadata.Found, out[0].Status())
	assert.Equal(t, metadata.Found, out[1].Status())

	for _, id := range []string{"C", "D", "E"} {
		var rec *metadata.ModMetadata
		for _, r := range out {
			if r.DisplayName() == id {
				rec = r
			}
		}
		require.NotNil(t, rec, id)
		assert.Equal(t, metadata.Failed, rec.Status())
		assert.Contains(t, rec.Error(), "dependency cycle: ")
	}
}

func TestProcessDependenciesVersionGateFails(t *testing.T) {
	a := found("A", "1.0.0")
	min := semver.MustParse("1.1.0")
	b := found("B", "1.0.0", manifest.Dependency{UniqueID: "A", MinimumVersion: &min, Required: true})

	out := ProcessDependencies([]*metadata.ModMetadata{a, b}, nil)

	require.Len(t, out, 2)
	bRec := out[len(out)-1]
	if out[0].DisplayName() == "B" {
		bRec = out[0]
	}
	require.Equal(t, "B", bRec.DisplayName())
	assert.Equal(t, metadata.Failed, bRec.Status())
	assert.Contains(t, bRec.Error(), "missing dependencies: ")

	for _, r := range out {
		if r.DisplayName() == "A" {
			assert.Equal(t, metadata.Found, r.Status())
		}
	}
}

func TestProcessDependenciesVersionGatePrereleaseSatisfies(t *testing.T) {
	a := found("A", "1.0.0")
	min := semver.MustParse("1.0.0-beta")
	b := found("B", "1.0.0", manifest.Dependency{UniqueID: "A", MinimumVersion: &min, Required: true})

	out := ProcessDependencies([]*metadata.ModMetadata{a, b}, nil)

	assert.Equal(t, []string{"A", "B"}, names(out))
	for _, r := range out {
		assert.Equal(t, metadata.Found, r.Status())
	}
}

func TestProcessDependenciesOptionalMissingIsIgnored(t *testing.T) {
	min := semver.MustParse("1.0.0")
	b := found("B", "1.0.0", manifest.Dependency{UniqueID: "A", MinimumVersion: &min, Required: false})

	out := ProcessDependencies([]*metadata.ModMetadata{b}, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].DisplayName())
	assert.Equal(t, metadata.Found, out[0].Status())
}

func TestProcessDependenciesFailedPreambleKeepsOriginalOrder(t *testing.T) {
	failedFirst := metadata.New(scan.ScanEntry{DirectoryPath: "/mods/Empty1", Error: "no manifest found"}, nil)
	a := found("A", "1.0.0")
	failedSecond := metadata.New(scan.ScanEntry{DirectoryPath: "/mods/Empty2", Error: "no manifest found"}, nil)

	out := ProcessDependencies([]*metadata.ModMetadata{failedFirst, a, failedSecond}, nil)

	require.Len(t, out, 3)
	assert.Equal(t, "/mods/Empty1", out[0].DisplayName())
	assert.Equal(t, "/mods/Empty2", out[1].DisplayName())
	assert.Equal(t, "A", out[2].DisplayName())
}

func TestProcessDependenciesMissingRequiredFails(t *testing.T) {
	b := found("B", "1.0.0", requiredDep("A"))

	out := ProcessDependencies([]*metadata.ModMetadata{b}, nil)

	require.Len(t, out, 1)
	assert.Equal(t, metadata.Failed, out[0].Status())
	assert.Contains(t, out[0].Error(), "missing dependencies: ")
}

func TestProcessDependenciesContentPackTargetIsRequiredDependency(t *testing.T) {
	target := found("Target", "1.0.0")
	pack := metadata.New(scan.ScanEntry{
		DirectoryPath: "/mods/Pack",
		Manifest: &manifest.Manifest{
			Name:           "Pack",
			UniqueID:       "pack",
			Version:        semver.MustParse("1.0.0"),
			ContentPackFor: &manifest.ContentPackRef{UniqueID: "Target"},
		},
	}, nil)

	out := ProcessDependencies([]*metadata.ModMetadata{pack, target}, nil)

	assert.Equal(t, []string{"Target", "Pack"}, names(out))
	for _, r := range out {
		assert.Equal(t, metadata.Found, r.Status())
	}
}

func TestProcessDependenciesTransitiveFailurePropagates(t *testing.T) {
	a := found("A", "1.0.0", requiredDep("Missing"))
	b := found("B", "1.0.0", requiredDep("A"))

	out := ProcessDependencies([]*metadata.ModMetadata{a, b}, nil)

	for _, r := range out {
		assert.Equal(t, metadata.Failed, r.Status())
	}
}
