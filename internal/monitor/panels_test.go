package monitor

import (
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/metrics"
	"github.com/rileyhilliard/sysmon/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() metrics.Snapshot {
	return metrics.Snapshot{
		OperatingSystem:  "ubuntu 22.04",
		Kernel:           "6.5.0-41-generic",
		CPU:              0.42,
		Memory:           0.5,
		Uptime:           3*time.Hour + 25*time.Minute + 7*time.Second,
		TotalProcesses:   312,
		RunningProcesses: 2,
	}
}

// lineAt returns the text placed at (row, col), failing if there is none.
func lineAt(t *testing.T, lines []Line, row, col int) Line {
	t.Helper()
	for _, l := range lines {
		if l.Row == row && l.Col == col {
			return l
		}
	}
	require.Failf(t, "missing line", "no text at row %d col %d", row, col)
	return Line{}
}

func TestSystemPanelLines(t *testing.T) {
	lines := SystemPanelLines(sampleSnapshot(), "Press 'q' to quit")

	tests := []struct {
		row, col int
		text     string
		role     Role
	}{
		{1, 2, "=== SYSTEM INFORMATION ===", RoleHeader},
		{2, 2, "OS: ubuntu 22.04", RoleText},
		{3, 2, "Kernel: 6.5.0-41-generic", RoleText},
		{4, 2, "CPU Usage:", RoleCPU},
		{5, 4, util.ProgressBar(0.42), RoleCPU},
		{6, 2, "Memory Usage:", RoleMemory},
		{7, 4, util.ProgressBar(0.5), RoleMemory},
		{8, 2, "Total Processes: 312", RoleText},
		{9, 2, "Running Processes: 2", RoleText},
		{10, 2, "Uptime: 03:25:07", RoleText},
		{12, 2, "Press 'q' to quit", RoleHint},
	}

	require.Len(t, lines, len(tests))
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			l := lineAt(t, lines, tt.row, tt.col)
			assert.Equal(t, tt.text, l.Text)
			assert.Equal(t, tt.role, l.Role)
		})
	}
}

func TestSystemPanelLines_FitInsidePanel(t *testing.T) {
	for _, l := range SystemPanelLines(sampleSnapshot(), "hint") {
		assert.Greater(t, l.Row, 0, "row 0 is the border")
		assert.Less(t, l.Row, SystemPanelHeight-1, "%q would land on the bottom border", l.Text)
	}
}

func TestSystemPanelLines_NoHint(t *testing.T) {
	lines := SystemPanelLines(sampleSnapshot(), "")
	for _, l := range lines {
		assert.NotEqual(t, RoleHint, l.Role)
	}
	assert.Len(t, lines, 10)
}

func TestProcessPanelHeight(t *testing.T) {
	assert.Equal(t, 20, ProcessPanelHeight(15))
	assert.Equal(t, 6, ProcessPanelHeight(1))
}

func TestProcessPanelLines_Header(t *testing.T) {
	lines := ProcessPanelLines(nil, 15)

	require.Len(t, lines, len(processColumns))
	want := map[int]string{2: "PID", 8: "USER", 20: "CPU%", 30: "RAM(MB)", 40: "TIME+", 52: "COMMAND"}
	for col, label := range want {
		l := lineAt(t, lines, 1, col)
		assert.Equal(t, label, l.Text)
		assert.Equal(t, RoleHeader, l.Role)
	}
}

func rowCount(lines []Line) int {
	rows := map[int]bool{}
	for _, l := range lines {
		if l.Row >= firstProcessRow {
			rows[l.Row] = true
		}
	}
	return len(rows)
}

func TestProcessPanelLines_RowLimit(t *testing.T) {
	tests := []struct {
		name   string
		rows   int
		limit  int
		expect int
	}{
		{"more rows than limit", 20, 15, 15},
		{"fewer rows than limit", 3, 15, 3},
		{"exactly limit", 15, 15, 15},
		{"no rows", 0, 15, 0},
		{"zero limit", 5, 0, 0},
		{"negative limit", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]metrics.ProcessRow, tt.rows)
			for i := range rows {
				rows[i] = metrics.ProcessRow{PID: 100 + i, User: "u", RAM: "1", Command: "c"}
			}
			assert.Equal(t, tt.expect, rowCount(ProcessPanelLines(rows, tt.limit)))
		})
	}
}

func TestProcessPanelLines_KeepsOrder(t *testing.T) {
	rows := []metrics.ProcessRow{{PID: 30}, {PID: 10}, {PID: 20}}
	lines := ProcessPanelLines(rows, 15)

	assert.Equal(t, "30", lineAt(t, lines, 2, 2).Text)
	assert.Equal(t, "10", lineAt(t, lines, 3, 2).Text)
	assert.Equal(t, "20", lineAt(t, lines, 4, 2).Text)
}

func TestProcessPanelLines_Values(t *testing.T) {
	rows := []metrics.ProcessRow{{
		PID:     4242,
		User:    "postgres",
		CPU:     0.456,
		RAM:     "1,024",
		Uptime:  90 * time.Minute,
		Command: "/usr/lib/postgresql/16/bin/postgres -D /var/lib/postgresql/16/main",
	}}
	lines := ProcessPanelLines(rows, 15)

	assert.Equal(t, "4242", lineAt(t, lines, 2, 2).Text)
	assert.Equal(t, "postgres", lineAt(t, lines, 2, 8).Text)
	assert.Equal(t, "45.6", lineAt(t, lines, 2, 20).Text)
	assert.Equal(t, "1,024", lineAt(t, lines, 2, 30).Text)
	assert.Equal(t, "01:30:00", lineAt(t, lines, 2, 40).Text)
	assert.Equal(t, "/usr/lib/postgresql/16/bi", lineAt(t, lines, 2, 52).Text)
}

func TestProcessPanelLines_CPUFormatting(t *testing.T) {
	tests := []struct {
		cpu    float64
		expect string
	}{
		{1.0, "100."},
		{0.0, "0.00"},
		{0.05, "5.00"},
		{0.999, "99.9"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			lines := ProcessPanelLines([]metrics.ProcessRow{{CPU: tt.cpu}}, 1)
			assert.Equal(t, tt.expect, lineAt(t, lines, 2, 20).Text)
		})
	}
}

func TestProcessPanelLines_ColumnsDoNotOverlap(t *testing.T) {
	long := strings.Repeat("x", 80)
	rows := []metrics.ProcessRow{{PID: 123456789, User: long, RAM: long, Command: long}}
	lines := ProcessPanelLines(rows, 1)

	for i, c := range processColumns {
		l := lineAt(t, lines, 2, c.offset)
		assert.LessOrEqual(t, len([]rune(l.Text)), columnWidth(i), c.label)
		if i+1 < len(processColumns) {
			assert.Less(t, c.offset+len([]rune(l.Text)), processColumns[i+1].offset, c.label)
		}
	}
	assert.Equal(t, CommandWidth, len([]rune(lineAt(t, lines, 2, 52).Text)))
}

func TestSortLines(t *testing.T) {
	lines := []Line{{Row: 2, Col: 8}, {Row: 1, Col: 20}, {Row: 2, Col: 2}, {Row: 1, Col: 2}}
	sortLines(lines)

	assert.Equal(t, []Line{{Row: 1, Col: 2}, {Row: 1, Col: 20}, {Row: 2, Col: 2}, {Row: 2, Col: 8}}, lines)
}
