package monitor

import (
	"sort"
	"strconv"

	"github.com/rileyhilliard/sysmon/internal/metrics"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// Panel geometry.
const (
	SystemPanelHeight = 14
	CommandWidth      = 25

	processPanelExtra = 5
	panelMargin       = 2
	labelColumn       = 2
	barColumn         = 4
	processHeaderRow  = 1
	firstProcessRow   = 2
)

const systemPanelTitle = "=== SYSTEM INFORMATION ==="

// ProcessPanelHeight returns the height of the process panel for a row limit.
func ProcessPanelHeight(limit int) int {
	return limit + processPanelExtra
}

// Line is one run of text placed inside a panel, positioned relative to the
// panel's top-left border cell.
type Line struct {
	Row  int
	Col  int
	Text string
	Role Role
}

// SystemPanelLines lays out the system summary for a snapshot. An empty
// hint leaves out the footer.
func SystemPanelLines(snap metrics.Snapshot, hint string) []Line {
	lines := []Line{
		{Text: systemPanelTitle, Role: RoleHeader},
		{Text: "OS: " + snap.OperatingSystem},
		{Text: "Kernel: " + snap.Kernel},
		{Text: "CPU Usage:", Role: RoleCPU},
		{Text: util.ProgressBar(snap.CPU), Role: RoleCPU, Col: barColumn},
		{Text: "Memory Usage:", Role: RoleMemory},
		{Text: util.ProgressBar(snap.Memory), Role: RoleMemory, Col: barColumn},
		{Text: "Total Processes: " + strconv.Itoa(snap.TotalProcesses)},
		{Text: "Running Processes: " + strconv.Itoa(snap.RunningProcesses)},
		{Text: "Uptime: " + util.FormatElapsed(snap.Uptime)},
	}

	for i := range lines {
		lines[i].Row = i + 1
		if lines[i].Col == 0 {
			lines[i].Col = labelColumn
		}
	}

	if hint != "" {
		lines = append(lines, Line{Row: len(lines) + 2, Col: labelColumn, Text: hint, Role: RoleHint})
	}
	return lines
}

// column describes one process table column. A column's values are cut to
// end one cell before the next column starts.
type column struct {
	label  string
	offset int
	value  func(metrics.ProcessRow) string
}

var processColumns = []column{
	{label: "PID", offset: 2, value: func(p metrics.ProcessRow) string { return strconv.Itoa(p.PID) }},
	{label: "USER", offset: 8, value: func(p metrics.ProcessRow) string { return p.User }},
	{label: "CPU%", offset: 20, value: func(p metrics.ProcessRow) string { return util.TruncatePercent(p.CPU) }},
	{label: "RAM(MB)", offset: 30, value: func(p metrics.ProcessRow) string { return p.RAM }},
	{label: "TIME+", offset: 40, value: func(p metrics.ProcessRow) string { return util.FormatElapsed(p.Uptime) }},
	{label: "COMMAND", offset: 52, value: func(p metrics.ProcessRow) string { return p.Command }},
}

// columnWidth returns how many runes column i may use.
func columnWidth(i int) int {
	if i+1 < len(processColumns) {
		return processColumns[i+1].offset - processColumns[i].offset - 1
	}
	return CommandWidth
}

// ProcessPanelLines lays out the header and min(limit, len(rows)) rows in
// the order given.
func ProcessPanelLines(rows []metrics.ProcessRow, limit int) []Line {
	n := min(max(limit, 0), len(rows))
	lines := make([]Line, 0, len(processColumns)*(n+1))

	for _, c := range processColumns {
		lines = append(lines, Line{Row: processHeaderRow, Col: c.offset, Text: c.label, Role: RoleHeader})
	}
	for i, p := range rows[:n] {
		for ci, c := range processColumns {
			lines = append(lines, Line{
				Row:  firstProcessRow + i,
				Col:  c.offset,
				Text: util.TruncateRunes(c.value(p), columnWidth(ci)),
			})
		}
	}
	return lines
}

// sortLines orders lines by row then column.
func sortLines(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Row != lines[j].Row {
			return lines[i].Row < lines[j].Row
		}
		return lines[i].Col < lines[j].Col
	})
}
