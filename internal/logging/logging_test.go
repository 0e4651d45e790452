package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesConsoleAndFile(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer
	logger, err := New(Options{
		Console:   &console,
		LogFolder: folder,
		Verbosity: 1,
		Now:       func() time.Time { return time.Date(2024, time.March, 5, 21, 4, 9, 0, time.UTC) },
	})
	require.Nil(t, err)

	logger.Info().Str("run_id", "abc").Msg("Integrating")
	logger.Debug().Msg("hidden at verbosity 1")
	require.Nil(t, logger.Close())
	require.Nil(t, logger.Close(), "second close is harmless")

	require.Equal(t, filepath.Join(folder, "console_05Mar24_210409.log"), logger.FilePath)
	contents, err := os.ReadFile(logger.FilePath)
	require.Nil(t, err)
	require.Contains(t, string(contents), `"message":"Integrating"`)
	require.Contains(t, string(contents), `"run_id":"abc"`)
	require.NotContains(t, string(contents), "hidden")
	require.Contains(t, console.String(), "Integrating")
}

func TestConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	logger := ConsoleOnly(&console, true, 0)
	logger.Debug().Msg("trace line")
	require.Equal(t, "", logger.FilePath)
	require.Contains(t, console.String(), "trace line")
	require.Nil(t, logger.Close())
}

func TestUnusableLogFolder(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.Nil(t, os.WriteFile(blocker, nil, 0o600))
	_, err := New(Options{Console: &bytes.Buffer{}, LogFolder: filepath.Join(blocker, "logs")})
	require.NotNil(t, err)
}

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, Level(true, 1))
	require.Equal(t, zerolog.DebugLevel, Level(false, 4))
	require.Equal(t, zerolog.InfoLevel, Level(false, 2))
	require.Equal(t, zerolog.WarnLevel, Level(false, 0))
}
