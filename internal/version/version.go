// Package version carries build metadata injected at link time.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/strfind/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/strfind/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/strfind/internal/version.Date={{.Date}}
)

// Resolved returns the version, falling back to the module version
// recorded by "go install" when no ldflags were given.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String renders the build information for the version command
func String() string {
	return fmt.Sprintf("strfind version %s\n  commit: %s\n  built:  %s\n", Resolved(), Commit, Date)
}
