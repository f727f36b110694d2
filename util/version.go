package util

import "strings"

var (
	ProgramVersionName = "webgui-patch/dev"
	ProgramCommit      = "unknown"
	ProgramBuildTime   = "unknown"
)

func normalizedMeta(value, fallback string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallback
	}
	return v
}

func VersionName() string {
	return normalizedMeta(ProgramVersionName, "webgui-patch/dev")
}

func CommitID() string {
	return normalizedMeta(ProgramCommit, "unknown")
}

func BuildTime() string {
	return normalizedMeta(ProgramBuildTime, "unknown")
}

// BuildInfo is printed by `webgui_patch version` and logged at startup.
func BuildInfo() string {
	return VersionName() + " commit=" + CommitID() + " build=" + BuildTime()
}
