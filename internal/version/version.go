// Package version exposes build metadata.
package version

var (
	// Version is the current release version. Overridden at build time
	// via ldflags.
	Version = "0.1.0"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
