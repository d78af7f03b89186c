package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# sysmon configuration")
	assert.Contains(t, string(data), "interval: 700ms")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := writeConfig(t, "processes: 3\n")

	err := WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	require.NoError(t, WriteDefault(path, true))
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Processes)
}

func TestSetValue_PreservesComments(t *testing.T) {
	path := writeConfig(t, `# my dashboard
interval: 1s # slower is fine
processes: 10
`)

	require.NoError(t, SetValue(path, "processes", "30"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# my dashboard")
	assert.Contains(t, content, "# slower is fine")
	assert.Contains(t, content, "processes: 30")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Processes)
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestSetValue_AddsKey(t *testing.T) {
	path := writeConfig(t, "processes: 10\n")

	require.NoError(t, SetValue(path, "color", "never"))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 10, cfg.Processes)
}

func TestSetValue_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", ConfigFileName)

	require.NoError(t, SetValue(path, "interval", "2s"))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Interval)
}

func TestSetValue_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "theme", "dark"},
		{"version is not settable", "version", "2"},
		{"invalid value", "processes", "0"},
		{"bad duration", "interval", "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "processes: 10\n")

			err := SetValue(path, tt.key, tt.value)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig), err.Error())

			// The file is left alone.
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "processes: 10\n", string(data))
		})
	}
}

func TestSettableKeys(t *testing.T) {
	assert.Equal(t, []string{"color", "interval", "join_timeout", "log_file", "poll_interval", "processes"}, SettableKeys())
}
