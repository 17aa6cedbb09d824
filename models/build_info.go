package models

import "fmt"

const unknownBuildValue = "N/A"

// BuildInfo is the linker-injected build metadata of a binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orUnknown := func(s string) string {
		if s == "" {
			return unknownBuildValue
		}
		return s
	}
	return BuildInfo{Version: orUnknown(version), Date: orUnknown(date), Commit: orUnknown(commit)}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", b.Version, b.Date, b.Commit)
}
