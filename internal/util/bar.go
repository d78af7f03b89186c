package util

import (
	"strconv"
	"strings"
)

// BarWidth is the number of cells between the brackets of a progress bar.
const BarWidth = 50

const (
	barFill  = "|"
	barEmpty = " "
)

// ProgressBar renders a utilization fraction as
//
//	[|||||||||                     ] 18%
//
// with floor(fraction*BarWidth) fill glyphs and floor(fraction*100) as the
// percentage. Fractions outside [0,1] are clamped.
func ProgressBar(fraction float64) string {
	if fraction < 0 || fraction != fraction {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction * BarWidth)
	percent := int(fraction * 100)

	var b strings.Builder
	b.Grow(BarWidth + 8)
	b.WriteString("[")
	b.WriteString(strings.Repeat(barFill, filled))
	b.WriteString(strings.Repeat(barEmpty, BarWidth-filled))
	b.WriteString("] ")
	b.WriteString(strconv.Itoa(percent))
	b.WriteString("%")
	return b.String()
}
