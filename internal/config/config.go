// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"modresolve/pkg/cueutil"
	"modresolve/pkg/platform"
)

const (
	// AppName is the application name used to namespace the config
	// directory.
	AppName = "modresolve"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// configDirOverride allows tests to override the config directory, since
// os.UserHomeDir() doesn't reliably respect $HOME on every platform.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path for tests.
func SetConfigDirOverride(dir string) { configDirOverride = dir }

// Reset clears the test override. Call from test cleanup.
func Reset() { configDirOverride = "" }

// ConfigDir returns modresolve's configuration directory using
// platform-specific conventions.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var dir string
	switch platform.Current() {
	case platform.Windows:
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default:
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(dir, AppName), nil
}

// Load reads configuration from the default location, falling back to
// DefaultConfig for any field left unset. A missing config file is not an
// error.
func Load(ctx context.Context) (*Config, error) {
	return NewProvider().Load(ctx, LoadOptions{})
}

func loadWithOptions(_ context.Context, opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("mods_root", def.ModsRoot)
	v.SetDefault("host_api_version", def.HostAPIVersion)
	v.SetDefault("compatibility_db_path", def.CompatibilityDBPath)
	v.SetDefault("strict_mode", def.StrictMode)
	v.SetDefault("ui.color_scheme", string(def.UI.ColorScheme))
	v.SetDefault("ui.verbose", def.UI.Verbose)

	v.SetEnvPrefix("MODRESOLVE")
	v.AutomaticEnv()

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, "", err
	}

	if path != "" {
		if data, statErr := os.ReadFile(path); statErr == nil {
			result, err := cueutil.ParseAndDecodeString[map[string]any](configSchema, data, "#Config",
				cueutil.WithFilename(path), cueutil.WithConcrete(false))
			if err != nil {
				return nil, "", fmt.Errorf("config %s does not satisfy its schema: %w", path, err)
			}
			if err := v.MergeConfigMap(*result.Value); err != nil {
				return nil, "", fmt.Errorf("failed to merge config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", fmt.Errorf("invalid configuration: %v", errs)
	}

	return &cfg, path, nil
}

func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		dir, err = ConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}
