// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"modresolve/internal/metadata"
	"modresolve/internal/output"
	"modresolve/internal/resolver"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Scan, validate, and order survivors by dependency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := loadRuntimeContext(cmd.Context())
			if err != nil {
				return err
			}

			records, err := runPipeline(rc)
			if err != nil {
				return err
			}

			if err := renderResolveResults(records); err != nil {
				return err
			}
			if rc.cfg.StrictMode && anyFailed(records) {
				return fmt.Errorf("strict mode: %d mod(s) failed", countFailed(records))
			}
			return nil
		},
	}
}

// runPipeline runs the full scan → validate → resolve sequence shared by
// the resolve and report commands.
func runPipeline(rc *runtimeContext) ([]*metadata.ModMetadata, error) {
	records, err := resolver.ReadManifests(rc.cfg.ModsRoot, nil, rc.db)
	if err != nil {
		return nil, err
	}
	resolver.ValidateManifests(records, rc.hostAPIVersion, rc.db.GetUpdateURL)
	return resolver.ProcessDependencies(records, rc.db), nil
}

func renderResolveResults(records []*metadata.ModMetadata) error {
	if flagJSON {
		return json.NewEncoder(output.Stdout()).Encode(scanRecordsToJSON(records))
	}

	t := output.NewTable("ORDER", "STATUS", "ID", "DIRECTORY", "DETAIL")
	for i, r := range records {
		status := "load"
		id := r.DisplayName()
		if m := r.Manifest(); m != nil {
			id = m.UniqueID
		}
		detail := ""
		if r.Status() == metadata.Failed {
			status = "skip"
			detail = r.Error()
		}
		t.Row(r.Status() == metadata.Failed, fmt.Sprintf("%d", i+1), status, id, r.DirectoryPath(), detail)
	}
	fmt.Fprintln(output.Stdout(), t.String())
	return nil
}
