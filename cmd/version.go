// =============================================================================
// CSV to PDF Card Generator - Version Command
// =============================================================================
//
// This file defines the 'version' command. The release version comes from
// an ldflags override; the VCS revision is read from the build metadata
// that the Go linker embeds, so plain 'go build' output is identifiable
// too.
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is the release version. Override at build time:
//   go build -ldflags "-X 'cmd.Version=1.1.0'"
var Version = "1.0.0"

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cardgen %s (rev %s, %s)\n", Version, buildRevision(), runtime.Version())
	},
}

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildRevision returns the short VCS revision from the embedded build
// info, or "unknown" for builds without version control metadata.
func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return shortRevision(info.Settings)
}

// shortRevision extracts vcs.revision from build settings, truncated to
// twelve characters.
func shortRevision(settings []debug.BuildSetting) string {
	for _, s := range settings {
		if s.Key != "vcs.revision" || s.Value == "" {
			continue
		}
		if len(s.Value) > 12 {
			return s.Value[:12]
		}
		return s.Value
	}
	return "unknown"
}
