package config

import (
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"future version", func(c *Config) { c.Version = CurrentConfigVersion + 1 }, "from the future"},
		{"minimum interval", func(c *Config) { c.Interval = MinInterval }, ""},
		{"interval too short", func(c *Config) { c.Interval = 50 * time.Millisecond }, "too short"},
		{"zero interval", func(c *Config) { c.Interval = 0 }, "too short"},
		{"one process", func(c *Config) { c.Processes = 1 }, ""},
		{"max processes", func(c *Config) { c.Processes = MaxProcesses }, ""},
		{"zero processes", func(c *Config) { c.Processes = 0 }, "Can't show 0 processes"},
		{"too many processes", func(c *Config) { c.Processes = MaxProcesses + 1 }, "Can't show"},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }, "poll_interval"},
		{"negative join timeout", func(c *Config) { c.JoinTimeout = -time.Second }, "join_timeout"},
		{"color always", func(c *Config) { c.Color = ColorAlways }, ""},
		{"color never", func(c *Config) { c.Color = ColorNever }, ""},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "valid color mode"},
		{"empty color", func(c *Config) { c.Color = "" }, "valid color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}
