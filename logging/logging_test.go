package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDebugLogsToConsole(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{Debug: true, File: "ignored.log", Console: &buf})
	require.NoError(t, err)
	defer closer.Close()

	require.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Debug().Str("map", "level1").Msg("loading map")

	out := buf.String()
	require.Contains(t, out, "loading map")
	require.Contains(t, out, "level1")
	// Console output is not JSON.
	require.False(t, strings.HasPrefix(out, "{"))
	_, err = os.Stat("ignored.log")
	require.True(t, os.IsNotExist(err))
}

func TestReleaseLogsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.log")
	log, closer, err := New(Options{File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	log.Debug().Msg("hidden")
	log.Info().Int("width", 320).Msg("window")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "window", entry["message"])
	require.Equal(t, float64(320), entry["width"])
}

func TestNoFileFallsBackToConsole(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Console: &buf})
	require.NoError(t, err)

	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
}

func TestExplicitLevel(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Level: "warn", Debug: true, Console: &buf})
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())

	_, _, err = New(Options{Level: "loud"})
	require.Error(t, err)
}
