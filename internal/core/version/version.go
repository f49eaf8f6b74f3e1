// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'chardetcompat/internal/core/version.version=v0.0.1'
	// -X 'chardetcompat/internal/core/version.commit=abcd' -X 'chardetcompat/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Service names the binary family in build info and logs
const Service = "chardetect"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// String renders "chardetect dev (none, unknown)"
func String() string {
	bi := Info()
	return bi.Service + " " + bi.Version + " (" + bi.Commit + ", " + bi.Date + ")"
}
