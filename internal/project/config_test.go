package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cherry-lang/cherrybuild/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, project.FileName), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := project.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, project.Default(), cfg)
	assert.Equal(t, ".", cfg.Source)
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, "Unix Makefiles", cfg.Generator)
	assert.Empty(t, cfg.Defines)
}

func TestLoadFullFile(t *testing.T) {
	dir := writeConfig(t, `
source: cherry
build_dir: out
generator: Ninja
defines:
  CHERRY_SANITIZE: ON
`)
	cfg, err := project.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "cherry", cfg.Source)
	assert.Equal(t, "out", cfg.BuildDir)
	assert.Equal(t, "Ninja", cfg.Generator)
	assert.Equal(t, map[string]string{"CHERRY_SANITIZE": "ON"}, cfg.Defines)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "build_dir: out\n")
	cfg, err := project.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.BuildDir)
	assert.Equal(t, ".", cfg.Source)
	assert.Equal(t, "Unix Makefiles", cfg.Generator)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "build_dir: [unclosed\n")
	_, err := project.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), project.FileName)
}
