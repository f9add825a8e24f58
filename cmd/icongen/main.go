// icongen - PWA icon asset generation for monash-handbook-plus
//
// Build with: go build ./cmd/icongen
// Release builds inject Version/BuildTime via -ldflags.
package main

import (
	"os"

	"github.com/saikumarmk/monash-handbook-plus/internal/cli"
	"github.com/saikumarmk/monash-handbook-plus/internal/version"
)

// Version information, overridden by ldflags in release builds.
var (
	Version   = "v1.0.0-dev"
	BuildTime = "unknown"
)

func main() {
	// Propagate version to the version package (canonical source for all
	// packages)
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
