// Package internal implements the cherry-build command-line interface,
// the flag-only counterpart of the cherry command.
package internal

import (
	"fmt"
	"log"

	"github.com/cherry-lang/cherrybuild/internal/buildinfo"
	"github.com/cherry-lang/cherrybuild/internal/cmake"
	"github.com/cherry-lang/cherrybuild/internal/pipeline"
	"github.com/cherry-lang/cherrybuild/internal/project"
	"github.com/spf13/cobra"
)

var (
	flagConfigure bool
	flagRelease   bool
	flagInstall   bool
	flagThreads   int
	flagProfile   bool
)

// runner overrides the process runner. Used for testing.
var runner cmake.Runner

var rootCmd = &cobra.Command{
	Use:          "cherry-build",
	Short:        "Build script for Cherry",
	Long:         `cherry-build configures and builds the Cherry project with CMake.`,
	Version:      buildinfo.Version,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		buildinfo.Commit,
		buildinfo.Date,
	))
	rootCmd.Flags().BoolVarP(&flagConfigure, "configure", "c", false,
		"Tell CMake to configure the project before building it")
	rootCmd.Flags().BoolVarP(&flagRelease, "release", "r", false,
		"Tell CMake to build in Release mode instead of Debug mode")
	rootCmd.Flags().BoolVarP(&flagInstall, "install", "i", false,
		"Tell CMake to install the project to the user's system")
	rootCmd.Flags().IntVarP(&flagThreads, "threads", "t", 1,
		"Tell CMake to use the specified number of threads for the build")
	rootCmd.Flags().BoolVar(&flagProfile, "profile", false,
		"Configure the build to enable the use of the performance tooling library")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := project.Load(".")
	if err != nil {
		return err
	}
	return pipeline.Run(cfg, pipeline.Options{
		Configure: flagConfigure,
		Release:   flagRelease,
		Install:   flagInstall,
		Threads:   flagThreads,
		Profile:   flagProfile,
	}, cmd.OutOrStdout(), runner)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
