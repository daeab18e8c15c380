package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dendrascience/respak/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Package is the name recorded in Info and in saved indexes.
const Package = "respak"

type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

// buildSetting looks key up in the embedded build info.
func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value, true
		}
	}
	return "", false
}

// GetVersion prefers the linker-injected version, then the module version.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if rev, ok := buildSetting("vcs.revision"); ok {
		return rev
	}
	return "unknown"
}

func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if t, ok := buildSetting("vcs.time"); ok {
		return t
	}
	return "unknown"
}

func GetInfo() Info {
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
		Package: Package,
	}
}

// String formats the version with a short commit and the build date when
// they are known.
func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	if i.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, i.Commit[:7], i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
}

func GetFullVersion() string {
	return GetInfo().String()
}

// Fprint writes the full version block to w.
func Fprint(w io.Writer) {
	info := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", info.Package, info)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
}
