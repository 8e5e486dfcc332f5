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

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Discover and parse every mod folder under the mods root",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := loadRuntimeContext(cmd.Context())
			if err != nil {
				return err
			}

			records, err := resolver.ReadManifests(rc.cfg.ModsRoot, nil, rc.db)
			if err != nil {
				return err
			}

			return renderScanResults(records)
		},
	}
}

func renderScanResults(records []*metadata.ModMetadata) error {
	if flagJSON {
		return json.NewEncoder(output.Stdout()).Encode(scanRecordsToJSON(records))
	}

	t := output.NewTable("STATUS", "DIRECTORY", "ID", "VERSION", "DETAIL")
	for _, r := range records {
		status := "found"
		id, version := "", ""
		if m := r.Manifest(); m != nil {
			id = m.UniqueID
			version = m.Version.String()
		}
		detail := ""
		if r.Status() == metadata.Failed {
			status = "failed"
			detail = r.Error()
		}
		t.Row(r.Status() == metadata.Failed, status, r.DirectoryPath(), id, version, detail)
	}
	fmt.Fprintln(output.Stdout(), t.String())
	return nil
}

type scanResultJSON struct {
	Status        string `json:"status"`
	DirectoryPath string `json:"directoryPath"`
	UniqueID      string `json:"uniqueId,omitempty"`
	Version       string `json:"version,omitempty"`
	Error         string `json:"error,omitempty"`
}

func scanRecordsToJSON(records []*metadata.ModMetadata) []scanResultJSON {
	out := make([]scanResultJSON, 0, len(records))
	for _, r := range records {
		entry := scanResultJSON{DirectoryPath: r.DirectoryPath()}
		if m := r.Manifest(); m != nil {
			entry.UniqueID = m.UniqueID
			entry.Version = m.Version.String()
		}
		if r.Status() == metadata.Failed {
			entry.Status = "failed"
			entry.Error = r.Error()
		} else {
			entry.Status = "found"
		}
		out = append(out, entry)
	}
	return out
}
