package main

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." for release builds. Empty values
// fall back to the module build info.
var (
	version string
	commit  string
	date    string
)

type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified,omitempty"`
}

// currentBuild merges link-time values over what the toolchain embedded.
func currentBuild() buildInfo {
	bi, _ := debug.ReadBuildInfo()
	return resolveBuild(bi, version, commit, date)
}

func resolveBuild(bi *debug.BuildInfo, ver, rev, built string) buildInfo {
	out := buildInfo{Version: "(devel)", Commit: "unknown", Date: "unknown"}
	if bi != nil {
		out.GoVersion = bi.GoVersion
		if bi.Main.Version != "" {
			out.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				out.Commit = s.Value
			case "vcs.time":
				out.Date = s.Value
			case "vcs.modified":
				out.Modified = s.Value == "true"
			}
		}
	}
	if ver != "" {
		out.Version = ver
	}
	if rev != "" {
		out.Commit = rev
	}
	if built != "" {
		out.Date = built
	}
	return out
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func runVersion() error {
	b := currentBuild()
	if jsonOut {
		return printJSON(b)
	}
	printInfo("schemactl %s\n", b.Version)
	printInfo("  commit: %s\n", b.Commit)
	if b.Modified {
		printInfo("  modified: true\n")
	}
	printInfo("  built: %s\n", b.Date)
	if b.GoVersion != "" {
		printInfo("  go: %s\n", b.GoVersion)
	}
	return nil
}

func init() {
	rootCmd.Version = currentBuild().Version
	rootCmd.AddCommand(versionCmd)
}
