// SPDX-License-Identifier: MPL-2.0

package depgraph

import (
	"fmt"
	"strings"

	"modresolve/internal/compatdb"
	"modresolve/internal/metadata"
	"modresolve/pkg/manifest"
	"modresolve/pkg/semver"
)

// ProcessDependencies resolves dependency references among the Found
// records, fails anything unsatisfiable or cyclic, and returns every
// record in a new order: the Failed preamble first (records already
// Failed on entry, original relative order preserved), then the
// topological order of what remains Found, then any record this pass
// itself failed (missing/version-gated/cyclic dependencies), in their
// relative order among the input's Found set. No record is ever
// dropped.
//
// db is accepted for interface parity with the resolver's other
// stages; the dependency algorithm itself only consults each record's
// own manifest.
func ProcessDependencies(records []*metadata.ModMetadata, db *compatdb.DB) []*metadata.ModMetadata {
	var failedPreamble []*metadata.ModMetadata
	var found []*metadata.ModMetadata
	for _, r := range records {
		if r.Status() == metadata.Found {
			found = append(found, r)
		} else {
			failedPreamble = append(failedPreamble, r)
		}
	}

	resolveReferences(found)
	runFixpoint(found)

	tail := topologicalEmit(found)

	var lateFailures []*metadata.ModMetadata
	for _, r := range found {
		if r.Status() != metadata.Found {
			lateFailures = append(lateFailures, r)
		}
	}

	out := make([]*metadata.ModMetadata, 0, len(records))
	out = append(out, failedPreamble...)
	out = append(out, tail...)
	out = append(out, lateFailures...)
	return out
}

// resolveReferences implements C7 step 2: for each Found record,
// resolve its manifest dependencies (and, for content packs, the
// contentPackFor target) against the Found set.
func resolveReferences(found []*metadata.ModMetadata) {
	for _, r := range found {
		if r.Status() != metadata.Found {
			continue
		}

		deps := r.Manifest().Dependencies
		if ref := r.Manifest().ContentPackFor; ref != nil {
			deps = append(append([]manifest.Dependency{}, deps...), manifest.Dependency{
				UniqueID: ref.UniqueID,
				Required: true,
			})
		}

		var resolved []*metadata.ModMetadata
		for _, d := range deps {
			target := findByID(found, d.UniqueID)
			switch {
			case target == nil && d.Required:
				r.SetStatus(metadata.Failed, fmt.Sprintf(
					"missing dependencies: %s requires %s, which was not found", r.DisplayName(), d.UniqueID))
			case target == nil:
				continue
			case d.MinimumVersion != nil && semver.Compare(target.Manifest().Version, *d.MinimumVersion) == semver.Less:
				r.SetStatus(metadata.Failed, fmt.Sprintf(
					"missing dependencies: %s requires %s at version %s or higher, found %s",
					r.DisplayName(), d.UniqueID, d.MinimumVersion, target.Manifest().Version))
			default:
				resolved = append(resolved, target)
			}
		}
		r.SetDependencies(resolved)
	}
}

func findByID(found []*metadata.ModMetadata, id string) *metadata.ModMetadata {
	for _, r := range found {
		if r.Status() == metadata.Found && r.HasID(id) {
			return r
		}
	}
	return nil
}

// runFixpoint alternates transitive failure propagation (step 3) and
// cycle detection (step 4) until a pass produces no new failures.
func runFixpoint(found []*metadata.ModMetadata) {
	for {
		changed := propagateFailures(found)
		if detectAndFailCycle(found) {
			changed = true
		}
		if !changed {
			return
		}
	}
}

func propagateFailures(found []*metadata.ModMetadata) bool {
	changed := false
	for _, r := range found {
		if r.Status() != metadata.Found {
			continue
		}
		for _, dep := range r.Dependencies() {
			if dep.Status() != metadata.Found {
				r.SetStatus(metadata.Failed, fmt.Sprintf(
					"missing dependencies: %s depends on %s, which failed: %s",
					r.DisplayName(), dep.DisplayName(), dep.Error()))
				changed = true
				break
			}
		}
	}
	return changed
}

func detectAndFailCycle(found []*metadata.ModMetadata) bool {
	g := NewGraph[*metadata.ModMetadata]()
	for _, r := range found {
		if r.Status() != metadata.Found {
			continue
		}
		g.AddNode(r)
		for _, dep := range r.Dependencies() {
			if dep.Status() == metadata.Found {
				g.AddEdge(r, dep)
			}
		}
	}

	cycle := g.FindCycle()
	if cycle == nil {
		return false
	}

	names := make([]string, len(cycle))
	for i, r := range cycle {
		names[i] = r.DisplayName()
	}
	msg := fmt.Sprintf("dependency cycle: %s", strings.Join(names, " -> "))
	for _, r := range cycle {
		r.SetStatus(metadata.Failed, msg)
	}
	return true
}

// topologicalEmit implements C7 step 5: from each remaining Found
// record, in its original order, DFS through its resolved
// dependencies (already in manifest-declared order), emitting a
// record only once every dependency it reaches has been emitted.
// Walking found and each record's dependencies in a fixed order and
// never revisiting an emitted node makes ties between otherwise-equal
// candidates resolve to first-appearance order.
func topologicalEmit(found []*metadata.ModMetadata) []*metadata.ModMetadata {
	emitted := make(map[*metadata.ModMetadata]bool, len(found))
	out := make([]*metadata.ModMetadata, 0, len(found))

	var visit func(r *metadata.ModMetadata)
	visit = func(r *metadata.ModMetadata) {
		if emitted[r] {
			return
		}
		emitted[r] = true
		for _, dep := range r.Dependencies() {
			if dep.Status() == metadata.Found {
				visit(dep)
			}
		}
		out = append(out, r)
	}

	for _, r := range found {
		if r.Status() == metadata.Found {
			visit(r)
		}
	}
	return out
}
