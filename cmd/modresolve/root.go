// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"modresolve/internal/compatdb"
	"modresolve/internal/config"
	"modresolve/internal/issue"
	"modresolve/internal/output"
	"modresolve/pkg/semver"
)

// runtimeContext carries the resolved configuration and the loaded
// compatibility database to every subcommand.
type runtimeContext struct {
	cfg            *config.Config
	db             *compatdb.DB
	hostAPIVersion semver.Version
}

var (
	flagModsRoot       string
	flagHostAPIVersion string
	flagConfigPath     string
	flagVerbose        bool
	flagJSON           bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "modresolve",
		Short:         "Discover, validate, and order third-party mod folders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagModsRoot, "mods-root", "", "root directory containing candidate mod folders (overrides config)")
	root.PersistentFlags().StringVar(&flagHostAPIVersion, "host-api-version", "", "host API version manifests are validated against (overrides config)")
	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a config.cue file (overrides the default config directory)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit machine-readable JSON instead of a table")

	root.AddCommand(newScanCmd(), newValidateCmd(), newResolveCmd(), newReportCmd())
	return root
}

// loadRuntimeContext merges persistent flags over the loaded config file
// and loads the bundled (or overridden) compatibility database.
func loadRuntimeContext(ctx context.Context) (*runtimeContext, error) {
	output.SetupLogging(flagVerbose)

	opts := config.LoadOptions{}
	if flagConfigPath != "" {
		opts.ConfigFilePath = flagConfigPath
	}

	cfg, err := config.NewProvider().Load(ctx, opts)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithSuggestion("Check that config.cue is valid CUE matching its schema").
			Wrap(err).
			Build()
	}

	if cfg.UI.Verbose {
		output.SetupLogging(true)
	}
	if flagModsRoot != "" {
		cfg.ModsRoot = flagModsRoot
	}
	if flagHostAPIVersion != "" {
		cfg.HostAPIVersion = flagHostAPIVersion
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, fmt.Errorf("invalid configuration: %v", errs)
	}

	hostVersion, err := semver.Parse(cfg.HostAPIVersion)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse host API version").
			WithResource(cfg.HostAPIVersion).
			Wrap(err).
			Build()
	}

	db, err := loadCompatibilityDB(cfg)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load compatibility database").
			WithSuggestion("Check the compatibility_db_path setting, if set").
			Wrap(err).
			Build()
	}

	return &runtimeContext{cfg: cfg, db: db, hostAPIVersion: hostVersion}, nil
}

func loadCompatibilityDB(cfg *config.Config) (*compatdb.DB, error) {
	if cfg.CompatibilityDBPath == "" {
		return compatdb.Load()
	}
	return compatdb.LoadFromFile(cfg.CompatibilityDBPath)
}
