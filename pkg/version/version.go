// Package version carries build-time metadata for the bundlefang binary.
package version

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
