package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/pokeranch-backend/internal/app.Version=1.0.0" ./cmd/server
//
// Left unset, Commit and BuildTime fall back to the VCS stamp Go embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string used in startup logs, /health and
// trailctl --version.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(info)
}

func formatVersion(info *debug.BuildInfo) string {
	commit, built := Commit, BuildTime
	dirty := false
	if info != nil {
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
	if dirty && Commit == "unknown" {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}
