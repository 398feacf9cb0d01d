// Package version reports what build of the service is running
package version

// BuildInfo is served by the meta endpoints
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information
// Set with -ldflags "-X 'clubhouse/internal/core/version.version=v0.1.0'
// -X 'clubhouse/internal/core/version.commit=abcd' -X 'clubhouse/internal/core/version.date=2026-10-17'"
func Info() BuildInfo {
	return BuildInfo{
		Service: ServiceName,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// ServiceName is what the api reports itself as
const ServiceName = "clubhouse-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
