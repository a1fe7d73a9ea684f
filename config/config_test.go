package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.Equal(t, 640, c.Window.Width)
	require.Equal(t, 480, c.Window.Height)
	require.Equal(t, 60, c.Render.TPS)
	require.True(t, c.Data.VerifyChecksums)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, "Q", c.Game.LeftKey)
	require.Equal(t, "D", c.Game.RightKey)
	require.Zero(t, c.Render.Bubbles)
	require.Equal(t, "bubble", c.Render.BubbleTexture)
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "first.yaml", `
window:
  width: 1280
game:
  world: cave
`)
	second := writeFile(t, dir, "second.yaml", `
window:
  fullscreen: true
game:
  world: castle
  player_x: 12.5
`)

	c, err := Load(first, second)
	require.NoError(t, err)

	require.Equal(t, 1280, c.Window.Width)
	// Untouched keys keep the default.
	require.Equal(t, 480, c.Window.Height)
	require.True(t, c.Window.Fullscreen)
	require.Equal(t, "castle", c.Game.World)
	require.Equal(t, 12.5, c.Game.PlayerX)
	require.Equal(t, "hiro", c.Game.Player)
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `
window:
  width: -5
render:
  tps: 0
  bubbles: -3
log:
  max_backups: -1
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, c.Window.Width)
	require.Equal(t, 1, c.Render.TPS)
	require.Zero(t, c.Render.Bubbles)
	require.Equal(t, 0, c.Log.MaxBackups)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 640, c.Window.Width)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	unknown := writeFile(t, dir, "unknown.yaml", "window:\n  depth: 3\n")
	_, err = Load(unknown)
	require.Error(t, err)

	malformed := writeFile(t, dir, "malformed.yaml", "window: [1, 2\n")
	_, err = Load(malformed)
	require.Error(t, err)

	wrongType := writeFile(t, dir, "type.yaml", "window:\n  width: wide\n")
	_, err = Load(wrongType)
	require.Error(t, err)
}
