// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

// ErrInvalidModsRoot is returned when the configured mods root is blank.
var ErrInvalidModsRoot = errors.New("invalid mods root")

type (
	// ColorScheme is the ui.color_scheme setting. It is validated and
	// stored only; no renderer reads it, and tables always render with
	// output.DefaultTableStyle whatever its value.
	ColorScheme string

	// InvalidColorSchemeError wraps ErrInvalidColorScheme with the
	// offending value for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidModsRootError wraps ErrInvalidModsRoot with the offending
	// value.
	InvalidModsRootError struct {
		Value string
	}

	// Config holds resolver-facing settings. Every field has a usable
	// default so an absent config file is not an error.
	Config struct {
		// ModsRoot is the directory the folder scanner walks for
		// candidate mod folders.
		ModsRoot string `json:"mods_root" mapstructure:"mods_root"`
		// HostAPIVersion is the semantic version the validator's API
		// floor check (§4.6 rule 2) compares manifests against.
		HostAPIVersion string `json:"host_api_version" mapstructure:"host_api_version"`
		// CompatibilityDBPath overrides the bundled compatibility
		// document with a file on disk, when set.
		CompatibilityDBPath string `json:"compatibility_db_path" mapstructure:"compatibility_db_path"`
		// StrictMode makes the CLI exit non-zero when any record in the
		// resolved output is Failed, instead of only reporting them.
		StrictMode bool `json:"strict_mode" mapstructure:"strict_mode"`
		// UI configures the report renderer.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the CLI's human-readable output.
	UIConfig struct {
		// ColorScheme holds the color scheme setting; the report table
		// does not read it (see the ColorScheme type).
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug-level logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color
// schemes, and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidModsRootError.
func (e *InvalidModsRootError) Error() string {
	return fmt.Sprintf("invalid mods root %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidModsRoot for errors.Is() compatibility.
func (e *InvalidModsRootError) Unwrap() error { return ErrInvalidModsRoot }

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.ModsRoot) == "" {
		errs = append(errs, &InvalidModsRootError{Value: c.ModsRoot})
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	return len(errs) == 0, errs
}

// DefaultConfig returns the configuration used when no config file is
// present and no flag overrides a field.
func DefaultConfig() *Config {
	return &Config{
		ModsRoot:             "mods",
		HostAPIVersion:       "1.0.0",
		CompatibilityDBPath:  "",
		StrictMode:           false,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
