package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the effective sysmon configuration: defaults, then the
// config file, then SYSMON_* environment variables, then flags.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval is the delay between dashboard refreshes.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Processes is how many process rows the dashboard shows.
	Processes int `yaml:"processes" mapstructure:"processes"`

	// PollInterval is how often the supervisor checks whether to stop.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`

	// JoinTimeout bounds how long shutdown waits for the render loop
	// before restoring the terminal itself.
	JoinTimeout time.Duration `yaml:"join_timeout" mapstructure:"join_timeout"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when the terminal has no color support.
	Color string `yaml:"color" mapstructure:"color"`

	// LogFile receives log output while the dashboard owns the terminal.
	// Empty discards it. Supports ~ and ${HOME}/${USER}.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		Interval:     700 * time.Millisecond,
		Processes:    15,
		PollInterval: time.Second,
		JoinTimeout:  2 * time.Second,
		Color:        ColorAuto,
	}
}

// fileConfig is Config as written to YAML, with durations spelled out.
type fileConfig struct {
	Version      int    `yaml:"version"`
	Interval     string `yaml:"interval"`
	Processes    int    `yaml:"processes"`
	PollInterval string `yaml:"poll_interval"`
	JoinTimeout  string `yaml:"join_timeout"`
	Color        string `yaml:"color"`
	LogFile      string `yaml:"log_file,omitempty"`
}

// MarshalYAML writes durations as "700ms" rather than nanoseconds.
func (c Config) MarshalYAML() (interface{}, error) {
	return fileConfig{
		Version:      c.Version,
		Interval:     c.Interval.String(),
		Processes:    c.Processes,
		PollInterval: c.PollInterval.String(),
		JoinTimeout:  c.JoinTimeout.String(),
		Color:        c.Color,
		LogFile:      c.LogFile,
	}, nil
}
