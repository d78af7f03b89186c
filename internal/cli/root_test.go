package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/metrics"
	metricstest "github.com/rileyhilliard/sysmon/internal/metrics/testing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// isolateCLI gives a test an empty home and working directory, resets
// every flag to its default and restores the test seams afterwards.
func isolateCLI(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{"SYSMON_INTERVAL", "SYSMON_PROCESSES", "SYSMON_COLOR", "SYSMON_LOG_FILE", "SYSMON_DEBUG", "NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	resetFlags(rootCmd)

	origTerminal, origOpen, origSource, origConfirm := isTerminal, openDisplay, newSource, confirmOverwrite
	t.Cleanup(func() {
		isTerminal, openDisplay, newSource, confirmOverwrite = origTerminal, origOpen, origSource, origConfirm
		resetFlags(rootCmd)
	})
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runCLI runs the command tree with args and captures its output.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

// fakeHost swaps in a FakeSource with n rows for the host metrics.
func fakeHost(t *testing.T, n int) *metricstest.FakeSource {
	t.Helper()
	src := metricstest.NewFakeSource(n)
	newSource = func(logger.Logger) metrics.Source { return src }
	return src
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name  string
		def   string
		local bool
	}{
		{"config", "", false},
		{"verbose", "false", false},
		{"no-color", "false", false},
		{"interval", "700ms", false},
		{"processes", "15", false},
		{"log-file", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := rootCmd.PersistentFlags()
			if tt.local {
				flags = rootCmd.Flags()
			}
			f := flags.Lookup(tt.name)
			if assert.NotNil(t, f) {
				assert.Equal(t, tt.def, f.DefValue)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"snapshot", "config", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRun_RejectsArguments(t *testing.T) {
	isolateCLI(t)

	_, stderr, code := runCLI(t, "bogus")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bogus")
}

func TestRun_ConfigErrorIsPrinted(t *testing.T) {
	isolateCLI(t)

	_, stderr, code := runCLI(t, "--processes", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Can't show 0 processes")
}

func TestRun_Verbose(t *testing.T) {
	isolateCLI(t)
	fakeHost(t, 3)
	isTerminal = func(*os.File) bool { return false }

	runCLI(t, "--verbose")
	assert.Equal(t, "1", os.Getenv(logger.DebugEnv))
}
