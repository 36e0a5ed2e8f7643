package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime may be set with -ldflags, e.g.
// -X github.com/heartmarshall/assetledger/internal/app.Version=1.4.0.
// Unset Commit and BuildTime fall back to the VCS stamp of the go tool.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported at startup and by /health.
func BuildVersion() string {
	commit, built, dirty := Commit, BuildTime, false
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" && len(s.Value) >= 12 {
					commit = s.Value[:12]
				}
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}
	if dirty && commit != "unknown" {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}
