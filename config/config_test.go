package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "SpaceS", cfg.Window.Title)
	assert.Equal(t, 1200, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Window.Decorated)
	assert.False(t, cfg.Window.Resizable)
	assert.Equal(t, "design/Hintergrund.png", cfg.Assets.IconImage)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spaces.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "SpaceS Dev"
width = 1600
height = 900
decorated = true

[assets]
records_dir = "testdata/records"

[profiler]
enabled = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SpaceS Dev", cfg.Window.Title)
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height)
	assert.True(t, cfg.Window.Decorated)
	assert.Equal(t, "testdata/records", cfg.Assets.RecordsDir)
	assert.True(t, cfg.Profiler.Enabled)

	// Untouched sections keep their defaults.
	assert.Equal(t, "design/Hintergrund.png", cfg.Assets.IconImage)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spaces.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveWindowSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spaces.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 0
height = 600
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
