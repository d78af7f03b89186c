package monitor

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_Classify(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		expect Input
	}{
		{"lowercase q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), InputQuit},
		{"uppercase Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift), InputQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), InputInterrupt},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), InputNone},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), InputNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), InputNone},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, keys.Classify(tt.ev))
		})
	}
}

func TestKeyMap_DisabledQuit(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Quit.SetEnabled(false)

	assert.Equal(t, InputNone, keys.Classify(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestKeyMap_QuitHint(t *testing.T) {
	assert.Equal(t, "Press 'q' to quit", DefaultKeyMap().QuitHint())
}

func TestInput_String(t *testing.T) {
	tests := []struct {
		in     Input
		expect string
	}{
		{InputNone, "none"},
		{InputQuit, "quit"},
		{InputInterrupt, "interrupt"},
		{Input(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.in.String())
		})
	}
}
