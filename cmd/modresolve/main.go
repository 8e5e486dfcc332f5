// SPDX-License-Identifier: MPL-2.0

// Command modresolve drives the mod resolver core end to end: discover
// manifests under a mods root, validate them against the host and the
// bundled compatibility database, and print the resulting load order.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Version is the semantic version, set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
