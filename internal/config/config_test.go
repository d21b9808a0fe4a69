package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesCLIDefaults(t *testing.T) {
	def := Default()
	assert.Equal(t, "astar", def.Algorithm)
	assert.Equal(t, "tiles", def.Problem)
	assert.Equal(t, 0, def.ExtraExpansionTime)
	assert.Equal(t, 1, def.Threads)
	assert.Equal(t, "none", def.Store)
}

func TestLoadWithEmptyPathReturnsBaseUnchanged(t *testing.T) {
	base := Default()
	cfg, err := Load("", base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoadMergesYAMLOverBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: cafe\nthreads: 4\n"), 0o644))

	cfg, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, "cafe", cfg.Algorithm)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, "tiles", cfg.Problem, "keys absent from the file must keep the base value")
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: [unterminated\n"), 0o644))

	_, err := Load(path, Default())
	assert.Error(t, err)
}
