package internal

import (
	"github.com/cherry-lang/cherrybuild/internal/pipeline"
	"github.com/cherry-lang/cherrybuild/internal/project"
	"github.com/spf13/cobra"
)

var (
	flagNoTests      bool
	flagNoBenchmarks bool
	flagProfile      bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Configure and build Cherry",
	Long:  `Build compiles Cherry, optionally running the CMake configure step first.`,
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&flagNoTests, "no-tests", false,
		"Tell CMake to disable the compilation of the tests for the build")
	buildCmd.Flags().BoolVar(&flagNoBenchmarks, "no-benchmarks", false,
		"Tell CMake to disable the compilation of the benchmarks for the build")
	buildCmd.Flags().BoolVar(&flagProfile, "profile", false,
		"Configure the build to enable the use of the performance tooling library")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := project.Load(".")
	if err != nil {
		return err
	}
	return pipeline.Run(cfg, pipeline.Options{
		Configure:  flagConfigure,
		Release:    flagRelease,
		Threads:    flagThreads,
		Profile:    flagProfile,
		Tests:      !flagNoTests,
		Benchmarks: !flagNoBenchmarks,
	}, cmd.OutOrStdout(), runner)
}
