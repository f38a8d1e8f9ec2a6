// Package buildinfo carries the firmware's build identity, set with
//
//	-ldflags "-X splitkb/internal/buildinfo.Version=v1.2.0 -X splitkb/internal/buildinfo.Commit=abc1234"
package buildinfo

import "strings"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Line describes the build in one line, e.g. "splitkb v1.2.0 (abc1234, 2026-10-01)".
func Line() string {
	var extra []string
	if Commit != "" && Commit != "unknown" && Commit != Short() {
		extra = append(extra, Commit)
	}
	if Date != "" && Date != "unknown" {
		extra = append(extra, Date)
	}
	s := "splitkb " + Short()
	if len(extra) > 0 {
		s += " (" + strings.Join(extra, ", ") + ")"
	}
	return s
}
