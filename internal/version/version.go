// Package version reports which readmecards build is running and how it
// identifies itself to GitHub and avatar hosts.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags, for example:
//
//	go build -ldflags="-X github.com/andywolf/readmecards/internal/version.Version=v1.0.0"
//
// Commit and BuildDate fall back to the VCS stamp the Go toolchain embeds
// when they are left unset.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const unset = "unknown"

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns the version string (e.g., "v1.2.3" or "dev").
func Short() string {
	return Version
}

// UserAgent is sent on every outbound request. GitHub rejects API calls
// without one.
func UserAgent() string {
	return "readmecards/" + Version
}

// Info returns a single-line version string.
// Format: "readmecards v1.2.3 (commit: abc1234, built: 2024-01-15T10:30:00Z, go: go1.25.x)"
func Info() string {
	commit, built := stamp()
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("readmecards %s (commit: %s, built: %s, go: %s)",
		Version, commit, built, runtime.Version())
}

// Full returns the multi-line output of `readmecards version --verbose`.
func Full() string {
	commit, built := stamp()
	return fmt.Sprintf(`readmecards %s
  Commit:     %s
  Built:      %s
  Go version: %s
  OS/Arch:    %s/%s
  User-Agent: %s`,
		Version, commit, built, runtime.Version(), runtime.GOOS, runtime.GOARCH, UserAgent())
}

// stamp resolves commit and build date, preferring ldflags over the
// embedded VCS settings. A dirty tree gets a "-dirty" suffix.
func stamp() (commit, built string) {
	commit, built = Commit, BuildDate
	if commit != unset && built != unset {
		return commit, built
	}

	info, ok := readBuildInfo()
	if !ok {
		return commit, built
	}

	var revision, vcsTime string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if commit == unset && revision != "" {
		commit = revision
		if modified {
			commit += "-dirty"
		}
	}
	if built == unset && vcsTime != "" {
		built = vcsTime
	}
	return commit, built
}
