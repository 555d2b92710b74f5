// Package version describes the running teamdate build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Info identifies a build. It is constructed once in main and handed to the
// command tree.
type Info struct {
	// Version is the release, e.g. "1.4.0". Set with -ldflags "-X main.buildVersion=...".
	Version string
	// Commit is the abbreviated VCS revision, "unknown" when not available.
	Commit string
	// Dirty marks a build from a modified working tree.
	Dirty bool
}

// commitLen matches the abbreviation used in release notes.
const commitLen = 8

// New builds an Info from linker-provided values, filling the commit from the
// embedded VCS stamp when commit is empty.
func New(version, commit string) Info {
	info := Info{Version: version, Commit: commit}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			info = info.withSettings(bi.Settings)
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

// withSettings copies vcs.revision and vcs.modified from build settings.
func (i Info) withSettings(settings []debug.BuildSetting) Info {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
			if len(i.Commit) > commitLen {
				i.Commit = i.Commit[:commitLen]
			}
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}

// String renders "v<version> (<commit>[-dirty])".
func (i Info) String() string {
	commit := i.Commit
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("v%s (%s)", i.Version, commit)
}
