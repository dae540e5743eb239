package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pmc"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".pmc", "config.yaml"), paths.ConfigFile)
}

func TestDefaultPaths_FollowsHomeChanges(t *testing.T) {
	first := t.TempDir()
	t.Setenv("HOME", first)
	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, ".pmc"), paths.HomeDir)

	second := t.TempDir()
	t.Setenv("HOME", second)
	paths, err = DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, ".pmc"), paths.HomeDir)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("PMC_CONFIG", "/custom/config.yaml")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", path)
	})

	t.Run("default", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("PMC_CONFIG", "")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".pmc", "config.yaml"), path)
	})
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/deploy/out", filepath.Join(home, "deploy/out")},
		{"absolute", "/etc/pmc", "/etc/pmc"},
		{"relative", "../api/package", "../api/package"},
		{"empty", "", ""},
		{"tilde user", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
