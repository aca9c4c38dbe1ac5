package main

import (
	"runtime/debug"

	"github.com/marcus/retro/cmd"
)

// Version is injected at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cmd.SetVersion(buildVersion())
	cmd.Execute()
}

// buildVersion prefers the linker-injected version, then the module
// version stamped by `go install`, then the VCS revision.
func buildVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 8 {
			return "devel+" + s.Value[:8]
		}
	}
	return Version
}
