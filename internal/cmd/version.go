package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			line := "Sitwatch Version: " + cmd.Root().Version
			if commit := buildCommit(); commit != "" {
				line += " (" + commit + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		},
	}
}

// buildCommit returns the short VCS revision embedded by the Go toolchain.
func buildCommit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			if len(setting.Value) > 12 {
				return setting.Value[:12]
			}
			return setting.Value
		}
	}
	return ""
}
