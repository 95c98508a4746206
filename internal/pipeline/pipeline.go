// Package pipeline turns parsed command-line options into the CMake
// configure and build phases shared by the cherry and cherry-build
// commands.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"

	"github.com/cherry-lang/cherrybuild/internal/cmake"
	"github.com/cherry-lang/cherrybuild/internal/project"
)

// Options is the immutable record built from one command-line
// invocation. It fully determines the generated CMake command lines.
type Options struct {
	// Configure runs the configure phase before the build.
	Configure bool
	// Release selects the Release build type instead of Debug.
	Release bool
	// Install is accepted by the cherry-build flag surface but has no
	// behavior yet.
	Install bool
	// Threads is forwarded to the native build tool, default 1.
	Threads int
	// Profile enables CHERRY_ENABLE_PROFILING during configure.
	Profile bool
	// Tests enables CHERRY_BUILD_TESTS during configure.
	Tests bool
	// Benchmarks enables CHERRY_BUILD_BENCHMARKS during configure.
	Benchmarks bool
}

// Validate rejects option values the native build tool would choke on.
func (o Options) Validate() error {
	if o.Threads < 1 {
		return fmt.Errorf("threads must be a positive integer, got %d", o.Threads)
	}
	return nil
}

// New assembles the CMake driver for one invocation. Feature defines
// are appended in a fixed order, followed by the project-config
// defines sorted by key.
func New(cfg project.Config, o Options) *cmake.CMake {
	c := cmake.New(cfg.Source, cfg.BuildDir)
	c.Generator(cfg.Generator)
	if o.Release {
		c.BuildType("Release")
	} else {
		c.BuildType("Debug")
	}
	if o.Profile {
		c.Define("CHERRY_ENABLE_PROFILING", "ON")
	}
	if o.Tests {
		c.Define("CHERRY_BUILD_TESTS", "ON")
	}
	if o.Benchmarks {
		c.Define("CHERRY_BUILD_BENCHMARKS", "ON")
	}
	keys := make([]string, 0, len(cfg.Defines))
	for k := range cfg.Defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Define(k, cfg.Defines[k])
	}
	c.Jobs(o.Threads)
	return c
}

// Run executes the configure phase when requested, then always the
// build phase. A configure run that exits non-zero does not stop the
// build; only a failure to spawn cmake aborts the pipeline.
func Run(cfg project.Config, o Options, out io.Writer, r cmake.Runner) error {
	if err := o.Validate(); err != nil {
		return err
	}
	c := New(cfg, o)
	if out != nil {
		c.SetOutput(out)
	}
	if r != nil {
		c.SetRunner(r)
	}
	if o.Configure {
		if err := c.Configure(); err != nil {
			var exit *exec.ExitError
			if !errors.As(err, &exit) {
				return fmt.Errorf("configure: %w", err)
			}
		}
	}
	if err := c.Build(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}
