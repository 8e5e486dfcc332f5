// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the handful of runtime.GOOS comparisons the
// resolver CLI needs to locate platform-specific directories.
package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns runtime.GOOS.
func Current() string {
	return runtime.GOOS
}
