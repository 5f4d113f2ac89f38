package version

import (
	"runtime/debug"
)

const modulePath = "github.com/curtisnewbie/timedial"

var (
	Version = "v0.1.0"
)

func init() {
	ver := ReadBuildVersion()
	if ver != "" {
		Version = ver
	}
}

// ReadBuildVersion reads timedial's module version from the build info.
//
// Checks the main module first (the timedial binary), then the dependency list.
func ReadBuildVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return findVersion(buildInfo)
}

func findVersion(buildInfo *debug.BuildInfo) string {
	if buildInfo.Main.Path == modulePath && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}
	for _, dep := range buildInfo.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	return ""
}
