// Package cmd holds the build stamp of the pm binary.
package cmd

import "runtime/debug"

// Set with -ldflags "-X github.com/thoreinstein/pm/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo is the version triple printed by pm version.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Info returns the ldflags stamp. Binaries built with go install carry no
// stamp, so the module version and VCS settings fill the gaps.
func Info() BuildInfo {
	info := BuildInfo{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}
