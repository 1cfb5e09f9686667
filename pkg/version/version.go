// Package version exposes the build version of fitreport.
package version

import "runtime/debug"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/fitreport/pkg/version.version=v1.0.0"
var version = "" //nolint:gochecknoglobals // Set via ldflags.

// GetVersion returns the ldflags version, the module version from build
// info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
