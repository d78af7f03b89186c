package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// resolveColorMode folds --no-color and NO_COLOR into the configured mode.
func resolveColorMode(mode string) string {
	if noColor || termenv.EnvNoColor() {
		return config.ColorNever
	}
	return mode
}

// applyColorMode sets the lipgloss color profile for the mode and returns
// the dashboard theme to match.
func applyColorMode(mode string) monitor.Theme {
	switch resolveColorMode(mode) {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		return monitor.PlainTheme()
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	return monitor.DefaultTheme()
}
