package app

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Release metadata, set with
// -ldflags "-X github.com/heartmarshall/rushin/internal/app.Version=v0.3.0".
// Commit and BuildTime fall back to the VCS stamp go build embeds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

const shortCommit = 12

// BuildVersion describes the running binary for the version command and the
// analyze start log, e.g. "v0.3.0 1a2b3c4d5e6f built 2026-01-02T03:04:05Z go1.24.7".
func BuildVersion() string {
	return buildVersion(debug.ReadBuildInfo)
}

func buildVersion(readInfo func() (*debug.BuildInfo, bool)) string {
	commit, built, dirty := Commit, BuildTime, false
	goVersion := runtime.Version()

	if info, ok := readInfo(); ok && info != nil {
		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	var b strings.Builder
	b.WriteString(Version)
	if commit != "" {
		if len(commit) > shortCommit {
			commit = commit[:shortCommit]
		}
		fmt.Fprintf(&b, " %s", commit)
		if dirty {
			b.WriteString("+dirty")
		}
	}
	if built != "" {
		fmt.Fprintf(&b, " built %s", built)
	}
	fmt.Fprintf(&b, " %s", goVersion)
	return b.String()
}
