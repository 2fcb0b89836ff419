package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.Trace)
}

func TestLoadFile(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "color: never\ntrace: true\n"))
		require.NoError(t, err)
		assert.Equal(t, ColorNever, cfg.Color)
		assert.True(t, cfg.Trace)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "trace: true\n"))
		require.NoError(t, err)
		assert.Equal(t, ColorAuto, cfg.Color)
		assert.True(t, cfg.Trace)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "color: [unterminated\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("invalid color mode", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "color: sometimes\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid color mode")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		t.Setenv(EnvConfigPath, writeConfig(t, "color: always\n"))
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ColorAlways, cfg.Color)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("absent default file means defaults", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("default path under xdg config home", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "pfind"), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(base, "pfind", "config.yaml"), []byte("trace: true\n"), 0o644))

		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", base)

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Trace)
	})
}

func TestColorEnabled(t *testing.T) {
	buf := new(bytes.Buffer)

	assert.True(t, (&Config{Color: ColorAlways}).ColorEnabled(buf))
	assert.False(t, (&Config{Color: ColorNever}).ColorEnabled(buf))

	// Auto never colors a non-terminal writer.
	assert.False(t, (&Config{Color: ColorAuto}).ColorEnabled(buf))
}
