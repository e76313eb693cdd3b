// Package version exposes build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo bundles version and toolchain details.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current build information, filling the commit from the
// embedded VCS metadata when ldflags did not set it.
func Get() BuildInfo {
	commit := GitCommit
	if commit == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
				}
			}
		}
	}

	return BuildInfo{
		Version:   Version,
		GitCommit: commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Full returns a multi-line version report.
func Full() string {
	info := Get()

	var b strings.Builder
	fmt.Fprintf(&b, "nicetree %s\n", info.Version)
	fmt.Fprintf(&b, "  Commit:     %s\n", info.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", info.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(&b, "  Platform:   %s", info.Platform)
	return b.String()
}
