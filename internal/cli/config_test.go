package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"FSMX_LOG_LEVEL", "FSMX_DEFINITION", "FSMX_PROMPT"} {
		unsetenv(t, k)
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "fsm.yaml", cfg.Definition)
	assert.Equal(t, "fsmx> ", cfg.Prompt)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FSMX_LOG_LEVEL", "debug")
	t.Setenv("FSMX_DEFINITION", "door.json")
	t.Setenv("FSMX_PROMPT", "> ")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "door.json", cfg.Definition)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	unsetenv(t, "FSMX_DEFINITION")
	unsetenv(t, "FSMX_PROMPT")
	t.Setenv("FSMX_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FSMX_DEFINITION=machines/door.yaml\nFSMX_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "machines/door.yaml", cfg.Definition)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel, "process environment wins over .env")
}

func TestLoadConfig_BadLevel(t *testing.T) {
	t.Setenv("FSMX_LOG_LEVEL", "loud")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
