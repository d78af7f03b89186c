package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysmon/internal/metrics"
	metricstest "github.com/rileyhilliard/sysmon/internal/metrics/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText_Layout(t *testing.T) {
	snap := sampleSnapshot()
	snap.Processes = metricstest.GenerateRows(20)

	out := RenderText(snap, 5, 100, PlainTheme())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, SystemPanelHeight+ProcessPanelHeight(5))
	for i, l := range lines {
		assert.Equal(t, 100, lipgloss.Width(l), "line %d: %q", i, l)
	}

	assert.Equal(t, "│ === SYSTEM INFORMATION ===", strings.TrimRight(lines[1], " │"))
	assert.Contains(t, lines[2], "OS: ubuntu 22.04")
	assert.Contains(t, lines[10], "Uptime: 03:25:07")
	assert.NotContains(t, out, "Press 'q'")

	header := lines[SystemPanelHeight+1]
	assert.True(t, strings.HasPrefix(header, "│ PID   USER"), header)
	assert.Contains(t, header, "COMMAND")

	assert.Contains(t, out, "/usr/bin/proc-4")
	assert.NotContains(t, out, "/usr/bin/proc-5")
}

func TestRenderText_NarrowWidthClips(t *testing.T) {
	snap := sampleSnapshot()
	snap.Processes = []metrics.ProcessRow{{PID: 1, User: "root", Command: "/sbin/init"}}

	out := RenderText(snap, 1, 30, PlainTheme())
	for i, l := range strings.Split(out, "\n") {
		assert.Equal(t, 30, lipgloss.Width(l), "line %d: %q", i, l)
	}
	assert.NotContains(t, out, "COMMAND")
}
