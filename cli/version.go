package cli

import "runtime/debug"

// version is set with
//
//	go build -ldflags "-X github.com/brimdata/bon/cli.version=v1.2.3"
var version string

// Version returns the linker-set version, else the module version recorded
// in the build information ("(devel)" for a local build), else "unknown".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "unknown"
}
