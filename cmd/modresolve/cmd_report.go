// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"modresolve/internal/metadata"
	"modresolve/internal/output"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline and print the load order with a pass/fail summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := loadRuntimeContext(cmd.Context())
			if err != nil {
				return err
			}

			records, err := runPipeline(rc)
			if err != nil {
				return err
			}

			if err := renderReport(records); err != nil {
				return err
			}
			if rc.cfg.StrictMode && anyFailed(records) {
				return fmt.Errorf("strict mode: %d mod(s) failed", countFailed(records))
			}
			return nil
		},
	}
}

type reportJSON struct {
	Mods   []scanResultJSON `json:"mods"`
	Loaded int              `json:"loaded"`
	Failed int              `json:"failed"`
}

func renderReport(records []*metadata.ModMetadata) error {
	failed := countFailed(records)
	loaded := len(records) - failed

	if flagJSON {
		return json.NewEncoder(output.Stdout()).Encode(reportJSON{
			Mods:   scanRecordsToJSON(records),
			Loaded: loaded,
			Failed: failed,
		})
	}

	if err := renderResolveResults(records); err != nil {
		return err
	}
	output.Println(fmt.Sprintf("%d mod(s) will load, %d failed", loaded, failed))
	return nil
}
