// Package build holds build-time information.
package build

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the application version.
	// It defaults to "dev" and can be overwritten by linker flags.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)

// ResolvedVersion returns Version, or the module version recorded by
// 'go install' when no version was set at link time.
func ResolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String describes the build as "<version> (commit: <commit>, date: <date>)".
func String() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", ResolvedVersion(), Commit, Date)
}
