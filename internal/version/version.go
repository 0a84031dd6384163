// Package version reports the build version of the colorvane binary.
package version

import "runtime/debug"

// Version is set on release builds via
// -ldflags="-X github.com/colorvane/colorvane/internal/version.Version=v1.0.0".
// Development builds fall back to VCS build info.
var Version = ""

// Info is the payload of the version command.
type Info struct {
	Version  string `json:"version"`
	Revision string `json:"revision,omitempty"`
	Modified bool   `json:"modified,omitempty"`
}

// Current resolves version info for this build.
func Current() Info {
	info := Info{Version: Version}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		if len(info.Revision) >= 7 {
			info.Version = "dev-" + info.Revision[:7]
		} else {
			info.Version = "dev"
		}
	}
	return info
}

// String formats the info for terminal output.
func (i Info) String() string {
	s := "colorvane " + i.Version
	if i.Modified {
		s += " (modified)"
	}
	return s
}
