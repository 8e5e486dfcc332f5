// SPDX-License-Identifier: MPL-2.0

// Package config handles resolver configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from ~/.config/modresolve/config.cue (or XDG
// equivalent on Linux, ~/Library/Application Support/modresolve/config.cue on
// macOS, %APPDATA%\modresolve\config.cue on Windows). It provides type-safe
// access to the handful of settings the resolver CLI needs: the mods root to
// scan, the host API version the validator enforces a floor against, an
// override location for the bundled compatibility document, and whether
// any failed mod should be treated as fatal by the CLI.
//
// Configuration is validated against a CUE schema (config_schema.cue) so
// malformed values are rejected with a clear message instead of silently
// zero-valued.
package config
