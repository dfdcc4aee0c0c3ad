package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.Equal(t, Settings{}, loadSettings(filepath.Join(dir, "missing.toml")))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, dir, "bad.toml", "config_path = [\n")
		assert.Equal(t, Settings{}, loadSettings(path))
	})

	t.Run("missing key", func(t *testing.T) {
		path := writeFile(t, dir, "partial.toml", "config_path = 'C:\\Games\\FFXIV.cfg'\n")
		assert.Equal(t, Settings{ConfigPath: `C:\Games\FFXIV.cfg`}, loadSettings(path))
	})
}

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultSettingsFile)
	want := Settings{ConfigPath: "/games/FFXIV.cfg", ExePath: "/games/boot/ffxivboot.exe"}

	require.NoError(t, saveSettings(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `config_path = "/games/FFXIV.cfg"`)
	assert.Contains(t, string(data), `exe_path = "/games/boot/ffxivboot.exe"`)
	assert.Equal(t, want, loadSettings(path))
}

func TestValidPath(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "FFXIV.cfg", "")

	assert.True(t, validPath(file))
	assert.False(t, validPath(dir))
	assert.False(t, validPath(""))
	assert.False(t, validPath(filepath.Join(dir, "missing")))
}

func TestValidateSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "FFXIV.cfg", "")
	exe := writeFile(t, dir, "ffxivboot.exe", "")

	t.Run("already valid", func(t *testing.T) {
		c, out := newTestConsole("")
		settings := Settings{ConfigPath: cfg, ExePath: exe}

		got, err := validateSettings(settings, c)
		require.NoError(t, err)
		assert.Equal(t, settings, got)
		assert.Empty(t, out.String())
	})

	t.Run("prompts for invalid field only", func(t *testing.T) {
		c, out := newTestConsole("missing.exe\n" + exe + "\n")

		got, err := validateSettings(Settings{ConfigPath: cfg, ExePath: "missing.exe"}, c)
		require.NoError(t, err)
		assert.Equal(t, Settings{ConfigPath: cfg, ExePath: exe}, got)
		assert.NotContains(t, out.String(), "FFXIV.cfg")
		assert.Equal(t, 2, strings.Count(out.String(), "ffxivboot.exe"))
	})

	t.Run("empty record", func(t *testing.T) {
		c, _ := newTestConsole(cfg + "\n" + exe + "\n")

		got, err := validateSettings(Settings{}, c)
		require.NoError(t, err)
		assert.Equal(t, Settings{ConfigPath: cfg, ExePath: exe}, got)
	})

	t.Run("end of input", func(t *testing.T) {
		c, _ := newTestConsole("")

		_, err := validateSettings(Settings{}, c)
		assert.ErrorIs(t, err, ErrNoInput)
	})
}

func TestPersistIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultSettingsFile)
	loaded := Settings{ConfigPath: "a.cfg", ExePath: "b.exe"}

	written, err := persistIfChanged(path, loaded, loaded)
	require.NoError(t, err)
	assert.False(t, written)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	updated := Settings{ConfigPath: "a.cfg", ExePath: "c.exe"}
	written, err = persistIfChanged(path, loaded, updated)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, updated, loadSettings(path))
}

func TestPersistIfChangedWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultSettingsFile)

	_, err := persistIfChanged(path, Settings{}, Settings{ExePath: "x"})
	assert.Error(t, err)
}
