package monitor

import (
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Role tags a piece of panel text with its semantic color.
type Role int

const (
	RoleText Role = iota
	RoleHeader
	RoleCPU
	RoleMemory
	RoleHint
)

// Dashboard palette, as ANSI color numbers so it follows the terminal's own theme.
const (
	ColorHeader lipgloss.Color = "3" // Yellow
	ColorCPU    lipgloss.Color = "4" // Blue
	ColorMemory lipgloss.Color = "2" // Green
	ColorHint   lipgloss.Color = "6" // Cyan
	ColorPanel  lipgloss.Color = "0" // Black
)

// Theme maps roles to colors. The dashboard uses a single fixed theme;
// Plain drops all colors for terminals (or users) that want none.
type Theme struct {
	Header     lipgloss.Color
	CPU        lipgloss.Color
	Memory     lipgloss.Color
	Hint       lipgloss.Color
	Background lipgloss.Color
	Plain      bool
}

// DefaultTheme returns the fixed dashboard theme.
func DefaultTheme() Theme {
	return Theme{
		Header:     ColorHeader,
		CPU:        ColorCPU,
		Memory:     ColorMemory,
		Hint:       ColorHint,
		Background: ColorPanel,
	}
}

// PlainTheme returns the theme without colors.
func PlainTheme() Theme {
	t := DefaultTheme()
	t.Plain = true
	return t
}

func (t Theme) color(role Role) (lipgloss.Color, bool) {
	switch role {
	case RoleHeader:
		return t.Header, true
	case RoleCPU:
		return t.CPU, true
	case RoleMemory:
		return t.Memory, true
	case RoleHint:
		return t.Hint, true
	default:
		return "", false
	}
}

// CellStyle returns the tcell style used to paint text with the given role.
// Headers are always bold.
func (t Theme) CellStyle(role Role) tcell.Style {
	st := tcell.StyleDefault
	if role == RoleHeader {
		st = st.Bold(true)
	}
	if t.Plain {
		return st
	}
	if c, ok := t.color(role); ok {
		st = st.Foreground(tcellColor(c)).Background(tcellColor(t.Background))
	}
	return st
}

// TextStyle returns the lipgloss style used for non-interactive output.
func (t Theme) TextStyle(role Role) lipgloss.Style {
	st := lipgloss.NewStyle()
	if role == RoleHeader {
		st = st.Bold(true)
	}
	if t.Plain {
		return st
	}
	if c, ok := t.color(role); ok {
		st = st.Foreground(c)
	}
	return st
}

// tcellColor converts a lipgloss color (ANSI number or #hex) to a tcell color.
func tcellColor(c lipgloss.Color) tcell.Color {
	if n, err := strconv.Atoi(string(c)); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(string(c))
}

// PanelBorder is the box drawn around each panel.
var PanelBorder = lipgloss.NormalBorder()

// borderRunes holds the panel border glyphs as single cells.
type borderRunes struct {
	top, bottom, left, right                   rune
	topLeft, topRight, bottomLeft, bottomRight rune
}

func newBorderRunes(b lipgloss.Border) borderRunes {
	return borderRunes{
		top:         firstRune(b.Top, '-'),
		bottom:      firstRune(b.Bottom, '-'),
		left:        firstRune(b.Left, '|'),
		right:       firstRune(b.Right, '|'),
		topLeft:     firstRune(b.TopLeft, '+'),
		topRight:    firstRune(b.TopRight, '+'),
		bottomLeft:  firstRune(b.BottomLeft, '+'),
		bottomRight: firstRune(b.BottomRight, '+'),
	}
}

func firstRune(s string, def rune) rune {
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		return r
	}
	return def
}
