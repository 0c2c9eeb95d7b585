package definition

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx"
)

const toggleYAML = `
initial: off
states:
  off:
    transitions:
      flip: on
  on:
    transitions:
      flip: off
`

const toggleJSON = `{
  "initial": "off",
  "states": {
    "off": {"transitions": {"flip": "on"}},
    "on": {"transitions": {"flip": "off"}}
  }
}`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"machine.yaml", YAML, false},
		{"dir/machine.YML", YAML, false},
		{"machine.json", JSON, false},
		{"machine.toml", "", true},
		{"machine", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.err {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		format Format
		data   string
	}{
		{YAML, toggleYAML},
		{JSON, toggleJSON},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, fsmx.StateID("off"), cfg.Initial)
			assert.Equal(t, []fsmx.StateID{"off", "on"}, cfg.States.Names())

			m, err := fsmx.New(cfg, fsmx.WithValidation())
			require.NoError(t, err)
			require.NoError(t, m.Trigger("flip"))
			assert.Equal(t, fsmx.StateID("on"), m.State())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"unknown yaml field", YAML, "initial: a\nstate: {}\n"},
		{"unknown json field", JSON, `{"initial":"a","extra":1}`},
		{"nested yaml typo", YAML, "initial: off\nstates:\n  off:\n    transitons:\n      flip: on\n  on: {}\n"},
		{"nested json typo", JSON, `{"initial":"off","states":{"off":{"transitons":{"flip":"on"}},"on":{}}}`},
		{"broken yaml", YAML, "initial: [a\n"},
		{"broken json", JSON, `{"initial":`},
		{"unknown format", Format("toml"), "initial = 'a'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoad_Validates(t *testing.T) {
	_, err := Load([]byte("initial: a\nstates:\n  a:\n    transitions:\n      go: b\n"), YAML)
	require.ErrorIs(t, err, fsmx.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `targets unknown state "b"`)

	cfg, err := Parse([]byte("initial: a\nstates:\n  a:\n    transitions:\n      go: b\n"), YAML)
	require.NoError(t, err, "Parse does not validate")
	assert.Equal(t, fsmx.StateID("a"), cfg.Initial)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "toggle.yaml")
	jsonPath := filepath.Join(dir, "toggle.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte(toggleYAML), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(toggleJSON), 0o644))

	for _, path := range []string{yamlPath, jsonPath} {
		cfg, err := LoadFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, []fsmx.StateID{"off", "on"}, cfg.States.Names())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	_, err = LoadFile(filepath.Join(dir, "machine.txt"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("initial: ghost\nstates:\n  a: {}\n"), 0o644))
	_, err = LoadFile(bad)
	require.ErrorIs(t, err, fsmx.ErrInvalidConfig)
	assert.Contains(t, err.Error(), bad)
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(map[string]any{
		"initial": "off",
		"states": map[string]any{
			"on":  map[string]any{"transitions": map[string]any{"flip": "off"}},
			"off": map[string]any{"transitions": map[string]any{"flip": "on"}},
			"broken": map[string]any{},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, fsmx.StateID("off"), cfg.Initial)
	assert.Equal(t, []fsmx.StateID{"broken", "off", "on"}, cfg.States.Names())
	require.NoError(t, cfg.Validate())

	m := fsmx.MustNew(cfg)
	require.NoError(t, m.Trigger("flip"))
	assert.Equal(t, fsmx.StateID("on"), m.State())
	assert.Equal(t, []fsmx.StateID{"off", "on"}, m.StatesFor("flip"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(map[string]any{"initial": "a", "unexpected": true})
	assert.Error(t, err)

	_, err = Decode(map[string]any{"states": map[string]any{"a": map[string]any{"transitions": []string{"x"}}}})
	assert.Error(t, err)
}
