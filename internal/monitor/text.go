package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/sysmon/internal/metrics"
)

// RenderText renders both panels of a snapshot as bordered text blocks,
// the same layout the dashboard paints, for one-shot output. width is the
// outer panel width.
func RenderText(snap metrics.Snapshot, limit, width int, theme Theme) string {
	system := renderTextPanel(SystemPanelLines(snap, ""), SystemPanelHeight, width, theme)
	processes := renderTextPanel(ProcessPanelLines(snap.Processes, limit), ProcessPanelHeight(limit), width, theme)
	return lipgloss.JoinVertical(lipgloss.Left, system, processes)
}

func renderTextPanel(lines []Line, height, width int, theme Theme) string {
	innerW := max(width-2, 0)
	innerH := max(height-2, 0)

	sortLines(lines)
	rows := make([]string, innerH)
	var b strings.Builder
	li := 0
	for row := 0; row < innerH; row++ {
		b.Reset()
		pos := 0
		for li < len(lines) && lines[li].Row-1 < row {
			li++
		}
		for li < len(lines) && lines[li].Row-1 == row {
			l := lines[li]
			li++
			col := l.Col - 1
			if col < pos || col >= innerW {
				continue
			}
			b.WriteString(strings.Repeat(" ", col-pos))
			pos = col
			text := runewidth.Truncate(l.Text, innerW-pos, "")
			b.WriteString(theme.TextStyle(l.Role).Render(text))
			pos += runewidth.StringWidth(text)
		}
		rows[row] = b.String()
	}

	box := lipgloss.NewStyle().
		Border(PanelBorder).
		Width(innerW)
	return box.Render(strings.Join(rows, "\n"))
}
