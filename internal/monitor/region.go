package monitor

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// region is a rectangle of the screen owned by one panel. Row and column
// arguments are relative to the region, with the border on row/column 0.
type region struct {
	x, y, w, h int
}

// clear blanks every cell of the region.
func (r region) clear(s tcell.Screen, st tcell.Style) {
	for row := 0; row < r.h; row++ {
		for col := 0; col < r.w; col++ {
			s.SetContent(r.x+col, r.y+row, ' ', nil, st)
		}
	}
}

// box draws the border around the region's edge.
func (r region) box(s tcell.Screen, b borderRunes, st tcell.Style) {
	if r.w < 2 || r.h < 2 {
		return
	}
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for col := r.x + 1; col < right; col++ {
		s.SetContent(col, r.y, b.top, nil, st)
		s.SetContent(col, bottom, b.bottom, nil, st)
	}
	for row := r.y + 1; row < bottom; row++ {
		s.SetContent(r.x, row, b.left, nil, st)
		s.SetContent(right, row, b.right, nil, st)
	}
	s.SetContent(r.x, r.y, b.topLeft, nil, st)
	s.SetContent(right, r.y, b.topRight, nil, st)
	s.SetContent(r.x, bottom, b.bottomLeft, nil, st)
	s.SetContent(right, bottom, b.bottomRight, nil, st)
}

// print writes text starting at (row, col) inside the border. Text that
// would reach the border is cut; it never wraps to the next row.
func (r region) print(s tcell.Screen, row, col int, text string, st tcell.Style) {
	if row < 1 || row > r.h-2 || col < 1 {
		return
	}
	limit := r.w - 1
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		if col+width > limit {
			return
		}
		s.SetContent(r.x+col, r.y+row, ch, nil, st)
		col += width
	}
}
