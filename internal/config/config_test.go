package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "belay-source", cfg.Source.Root)
	assert.Equal(t, "src/*/bin/Release/net8.0/*.xml", cfg.Source.Glob)
	assert.Equal(t, []string{"ref"}, cfg.Source.Exclude)
	assert.Equal(t, 10, cfg.Source.MaxFiles)
	assert.Equal(t, 15, cfg.Limits.MaxTypes)
	assert.Equal(t, 5, cfg.Limits.MaxMembers)
	assert.Equal(t, 20, cfg.Quality.MinSummaryLength)
	assert.InDelta(t, 0.30, cfg.Quality.MinDocumentedRatio, 1e-9)
	assert.Equal(t, "belay-dotnet/Belay.NET", cfg.Releases.Repository)
	assert.Len(t, cfg.Site.Fallback, 3)
	assert.Equal(t, "Belay.Core", cfg.Site.Fallback[0].Name)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docbuild.yaml")
	content := `
source:
  root: /srv/checkout
  max_files: 3
quality:
  min_summary_length: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/checkout", cfg.Source.Root)
	assert.Equal(t, 3, cfg.Source.MaxFiles)
	assert.Equal(t, 40, cfg.Quality.MinSummaryLength)
	// unset fields keep their defaults
	assert.Equal(t, "src/*/bin/Release/net8.0/*.xml", cfg.Source.Glob)
	assert.Equal(t, "api/generated", cfg.Output.GeneratedDir)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCS_SOURCE_ROOT", "/ci/belay")
	path := filepath.Join(t.TempDir(), "docbuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  root: ${DOCS_SOURCE_ROOT}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/ci/belay", cfg.Source.Root)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docbuild.yaml")

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Source.Glob, cfg.Source.Glob)

	err = Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, Init(path, true))
}
