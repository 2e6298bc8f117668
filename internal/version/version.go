// Package version reports build metadata for the vlistdata binary. Release
// builds stamp the variables below with -ldflags; development builds fall
// back to the VCS information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Name is the service name reported by /health and the version command.
const Name = "vlistdata"

// Info describes one build of the binary.
type Info struct {
	Name      string    `json:"name" yaml:"name"`
	Version   string    `json:"version" yaml:"version"`
	Commit    string    `json:"commit" yaml:"commit"`
	BuiltAt   time.Time `json:"built_at,omitempty" yaml:"built_at,omitempty"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	Platform  string    `json:"platform" yaml:"platform"`
}

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/conneroisu/vlistdata/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get returns the metadata of the running binary.
func Get() Info {
	return Info{
		Name:      Name,
		Version:   GetVersion(),
		Commit:    GetGitCommit(),
		BuiltAt:   parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetVersion returns the stamped version, the module version, or a
// dev-<sha> string derived from the VCS revision.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	if rev := setting(info, "vcs.revision"); len(rev) >= 7 {
		return "dev-" + rev[:7]
	}
	return "dev"
}

// GetGitCommit returns the full commit hash the binary was built from.
func GetGitCommit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := readBuildInfo(); ok {
		if rev := setting(info, "vcs.revision"); rev != "" {
			return rev
		}
	}
	return "unknown"
}

// GetShortVersion returns a one-line version for log lines and banners.
func GetShortVersion() string {
	v := GetVersion()
	commit := GetGitCommit()
	if commit == "unknown" || len(commit) < 7 || strings.HasPrefix(v, "dev-") {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, commit[:7])
}

// String renders the info as the multi-line text printed by `vlistdata version`.
func (i Info) String() string {
	lines := []string{fmt.Sprintf("%s %s", i.Name, i.Version)}
	if i.Commit != "unknown" {
		lines = append(lines, "Commit:   "+i.Commit)
	}
	if !i.BuiltAt.IsZero() {
		lines = append(lines, "Built:    "+i.BuiltAt.Format(time.RFC3339))
	}
	lines = append(lines,
		"Go:       "+i.GoVersion,
		"Platform: "+i.Platform,
	)
	return strings.Join(lines, "\n")
}

// IsRelease reports whether the binary carries a real version.
func IsRelease() bool {
	v := GetVersion()
	return v != "dev" && !strings.HasPrefix(v, "dev-")
}

func setting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// parseBuildTime accepts RFC3339 and a few common variants; anything else
// yields the zero time.
func parseBuildTime(s string) time.Time {
	if s == "" || s == "unknown" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
