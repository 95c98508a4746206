// Package internal implements the cherry command-line interface.
package internal

import (
	"fmt"
	"log"

	"github.com/cherry-lang/cherrybuild/internal/buildinfo"
	"github.com/cherry-lang/cherrybuild/internal/cmake"
	"github.com/spf13/cobra"
)

var (
	flagConfigure bool
	flagRelease   bool
	flagThreads   int
)

// runner overrides the process runner for commands. Used for testing.
var runner cmake.Runner

var rootCmd = &cobra.Command{
	Use:     "cherry",
	Short:   "Build script for Cherry",
	Long:    `cherry drives the CMake configure and build steps of the Cherry project.`,
	Version: buildinfo.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Invoking without a subcommand takes no action.
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		buildinfo.Commit,
		buildinfo.Date,
	))
	rootCmd.PersistentFlags().BoolVarP(&flagConfigure, "configure", "c", false,
		"Tell CMake to configure the project before building it")
	rootCmd.PersistentFlags().BoolVarP(&flagRelease, "release", "r", false,
		"Tell CMake to build in Release mode instead of Debug mode")
	rootCmd.PersistentFlags().IntVarP(&flagThreads, "threads", "t", 1,
		"Tell CMake to use the specified number of threads for the build")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
