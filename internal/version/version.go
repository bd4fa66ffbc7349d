// Package version holds build-time version information.
package version

// Populated via cmd/iosetup at startup (ldflags on the main package).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
