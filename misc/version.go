// Package misc provides program identity helpers.
package misc

import "runtime/debug"

const appName = "cssel"

// GetAppName returns the short program name used for logger naming and
// derived file names.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in build info, or "devel"
// for local builds.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns the vcs revision recorded in build info, empty when not
// built from a repository.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
