// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the runtime.GOOS comparisons the config
// loader needs to locate the user's per-OS config directory.
package platform
