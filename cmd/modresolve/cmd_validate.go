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

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Scan and run the compatibility, API-floor, and entry-file checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := loadRuntimeContext(cmd.Context())
			if err != nil {
				return err
			}

			records, err := resolver.ReadManifests(rc.cfg.ModsRoot, nil, rc.db)
			if err != nil {
				return err
			}
			resolver.ValidateManifests(records, rc.hostAPIVersion, rc.db.GetUpdateURL)

			if err := renderValidationResults(records); err != nil {
				return err
			}
			if rc.cfg.StrictMode && anyFailed(records) {
				return fmt.Errorf("strict mode: %d mod(s) failed validation", countFailed(records))
			}
			return nil
		},
	}
}

func anyFailed(records []*metadata.ModMetadata) bool {
	return countFailed(records) > 0
}

func countFailed(records []*metadata.ModMetadata) int {
	n := 0
	for _, r := range records {
		if r.Status() == metadata.Failed {
			n++
		}
	}
	return n
}

func renderValidationResults(records []*metadata.ModMetadata) error {
	if flagJSON {
		return json.NewEncoder(output.Stdout()).Encode(scanRecordsToJSON(records))
	}

	t := output.NewTable("STATUS", "ID", "DIRECTORY", "DETAIL")
	for _, r := range records {
		status := "ok"
		id := r.DisplayName()
		if m := r.Manifest(); m != nil {
			id = m.UniqueID
		}
		detail := ""
		if r.Status() == metadata.Failed {
			status = "failed"
			detail = r.Error()
		}
		t.Row(r.Status() == metadata.Failed, status, id, r.DirectoryPath(), detail)
	}
	fmt.Fprintln(output.Stdout(), t.String())
	return nil
}
