// Package buildinfo exposes the version stamped into the wrrc binary.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/wrrc/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/wrrc/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/wrrc/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)" ./cmd/wrrc
package buildinfo

import "fmt"

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String formats the build as "v1.2.3 (abc123, 2026-01-01)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Version, i.Commit, i.Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\n", Get())
}
