package internal

import (
	"fmt"

	"github.com/cherry-lang/cherrybuild/internal/buildinfo"
	"github.com/cherry-lang/cherrybuild/internal/cmake"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cherry and CMake version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cherry %s (commit: %s, date: %s)\n",
		buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	ver, err := cmake.Version()
	if err != nil {
		fmt.Fprintln(out, "cmake not found in PATH")
		return nil
	}
	fmt.Fprintf(out, "cmake %s\n", ver)
	if !cmake.Supported(ver) {
		fmt.Fprintf(out, "warning: cmake %s or newer is required\n", cmake.MinVersion)
	}
	return nil
}
