// Package cmake drives the CMake configure/build/install workflow
// for the Cherry project.
package cmake

import (
	"io"
	"os"
	"strconv"
)

type define struct {
	key   string
	value string
}

// CMake assembles and runs CMake command lines. The argument lists it
// produces are fully determined by the configured fields; Args methods
// never fail.
type CMake struct {
	sourceDir string
	buildDir  string
	generator string
	buildType string
	jobs      int
	defines   []define
	env       map[string]string
	out       io.Writer
	runner    Runner
}

// New returns a driver for the given source and build directories.
// Empty arguments fall back to "." and "build". The build type
// defaults to Debug and the child environment forces colorized
// output (CLICOLOR_FORCE=1).
func New(sourceDir, buildDir string) *CMake {
	if sourceDir == "" {
		sourceDir = "."
	}
	if buildDir == "" {
		buildDir = "build"
	}
	return &CMake{
		sourceDir: sourceDir,
		buildDir:  buildDir,
		generator: "Unix Makefiles",
		buildType: "Debug",
		jobs:      1,
		env:       map[string]string{"CLICOLOR_FORCE": "1"},
		out:       os.Stdout,
		runner:    Execute,
	}
}

// Generator sets the CMake generator (e.g. "Ninja", "Unix Makefiles").
func (c *CMake) Generator(name string) { c.generator = name }

// BuildType sets CMAKE_BUILD_TYPE (e.g. "Release", "Debug").
func (c *CMake) BuildType(name string) { c.buildType = name }

// Jobs sets the thread count forwarded to the native build tool.
func (c *CMake) Jobs(n int) { c.jobs = n }

// Define adds a -D<key>=<value> cache entry. Defines keep the order
// they were added in; redefining a key updates it in place.
func (c *CMake) Define(key, value string) {
	for i, d := range c.defines {
		if d.key == key {
			c.defines[i].value = value
			return
		}
	}
	c.defines = append(c.defines, define{key: key, value: value})
}

// Env overrides an environment variable for spawned commands only.
func (c *CMake) Env(key, value string) {
	c.env[key] = value
}

// SetOutput redirects the streamed subprocess output.
func (c *CMake) SetOutput(w io.Writer) { c.out = w }

// SetRunner replaces the process runner. Used for testing.
func (c *CMake) SetRunner(r Runner) { c.runner = r }

// ConfigureArgs returns the configure-phase argument list:
// generator, build type, cache defines, then -S <source> -B <build>.
func (c *CMake) ConfigureArgs() []string {
	args := []string{"-G", c.generator, "-DCMAKE_BUILD_TYPE=" + c.buildType}
	for _, d := range c.defines {
		args = append(args, "-D"+d.key+"="+d.value)
	}
	return append(args, "-S", c.sourceDir, "-B", c.buildDir)
}

// BuildArgs returns the build-phase argument list. The thread-count
// flag is always present.
func (c *CMake) BuildArgs() []string {
	return []string{"--build", c.buildDir, "--", "-j" + strconv.Itoa(c.jobs)}
}

// InstallArgs returns the install-phase argument list.
func (c *CMake) InstallArgs() []string {
	return []string{"--install", c.buildDir}
}

// Configure runs "cmake -S <source> -B <build>" with all configured
// options. CMake creates the build directory itself.
func (c *CMake) Configure() error {
	return c.runner("cmake", c.ConfigureArgs(), c.env, c.out)
}

// Build runs "cmake --build <build> -- -j<N>".
func (c *CMake) Build() error {
	return c.runner("cmake", c.BuildArgs(), c.env, c.out)
}

// Install runs "cmake --install <build>".
func (c *CMake) Install() error {
	return c.runner("cmake", c.InstallArgs(), c.env, c.out)
}
