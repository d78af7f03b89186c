package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gdamore/tcell/v2"
)

// KeyMap holds the dashboard's key bindings.
type KeyMap struct {
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the bindings shown in the footer hint.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
	}
}

// QuitHint is the footer line telling the user how to leave.
func (k KeyMap) QuitHint() string {
	return fmt.Sprintf("Press '%s' to %s", k.Quit.Help().Key, k.Quit.Help().Desc)
}

// Classify maps a key event to the dashboard input it stands for.
func (k KeyMap) Classify(ev *tcell.EventKey) Input {
	name := keyName(ev)
	switch {
	case key.Matches(name, k.Quit):
		return InputQuit
	case key.Matches(name, k.Interrupt):
		return InputInterrupt
	default:
		return InputNone
	}
}

// keyString names a tcell key event the way bindings spell keys.
type keyString string

func (k keyString) String() string { return string(k) }

func keyName(ev *tcell.EventKey) keyString {
	switch ev.Key() {
	case tcell.KeyRune:
		return keyString(string(ev.Rune()))
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	default:
		return keyString(strings.ToLower(ev.Name()))
	}
}
