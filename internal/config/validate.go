package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Limits enforced by Validate.
const (
	MinInterval  = 100 * time.Millisecond
	MinProcesses = 1
	MaxProcesses = 200
)

// ValidColors lists the accepted color modes.
var ValidColors = []string{ColorAuto, ColorAlways, ColorNever}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sysmon, or lower 'version' in your config")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use at least %s, e.g. 'interval: 700ms'", MinInterval))
	}

	if cfg.Processes < MinProcesses || cfg.Processes > MaxProcesses {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Can't show %d processes", cfg.Processes),
			fmt.Sprintf("Pick a number between %d and %d", MinProcesses, MaxProcesses))
	}

	if err := validatePositive("poll_interval", cfg.PollInterval); err != nil {
		return err
	}
	if err := validatePositive("join_timeout", cfg.JoinTimeout); err != nil {
		return err
	}

	if !isValidColor(cfg.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a valid color mode", cfg.Color),
			"Use one of: "+strings.Join(ValidColors, ", "))
	}

	return nil
}

func validatePositive(key string, d time.Duration) error {
	if d > 0 {
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' must be a positive duration, got %s", key, d),
		fmt.Sprintf("Set it to something like '%s: 1s'", key))
}

func isValidColor(mode string) bool {
	for _, c := range ValidColors {
		if mode == c {
			return true
		}
	}
	return false
}
