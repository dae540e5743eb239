// Package version provides version information for the pmc CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// CUESDKVersion is the version of the CUE SDK used for schema validation.
const CUESDKVersion = "v0.15.4"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK version (embedded at build time).
	CUESDKVersion string `json:"cueSDKVersion"`
}

// SuiBinaryInfo describes the sui CLI found on this machine.
type SuiBinaryInfo struct {
	// Version is the sui binary version, e.g. v1.38.1.
	Version string `json:"version"`

	// Path is the resolved path to the binary.
	Path string `json:"path"`

	// Found indicates if the binary was found.
	Found bool `json:"found"`

	// Message explains why Version is empty.
	Message string `json:"message,omitempty"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: CUESDKVersion,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("pmc:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n  CUE SDK:  %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.CUESDKVersion)
}

// String returns a human-readable sui binary info string.
func (s SuiBinaryInfo) String() string {
	if !s.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}
	if s.Version == "" {
		return fmt.Sprintf("  Binary Version: unknown (%s)\n  Binary Path:    %s", s.Message, s.Path)
	}
	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", s.Version, s.Path)
}

// FullVersionString returns complete version information including the sui binary.
func FullVersionString(info Info, sui SuiBinaryInfo) string {
	return fmt.Sprintf("%s\n\nsui:\n%s", info.String(), sui.String())
}
