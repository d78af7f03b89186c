package monitor

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/metrics"
)

// eventBuffer bounds how many terminal events may queue between polls.
const eventBuffer = 32

// Renderer is the tcell-backed Display. It owns the screen from Init until
// Teardown and paints the system and process panels into fixed regions.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	border borderRunes
	keys   KeyMap

	limit int
	sys   region
	proc  region

	events chan tcell.Event
	quit   chan struct{}

	// initMu serializes Init with Teardown so a teardown that arrives while
	// the screen is starting waits for it and then restores it.
	initMu   sync.Mutex
	ready    atomic.Bool
	tornDown atomic.Bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTheme sets the color theme.
func WithTheme(t Theme) RendererOption {
	return func(r *Renderer) { r.theme = t }
}

// WithKeyMap sets the key bindings.
func WithKeyMap(k KeyMap) RendererOption {
	return func(r *Renderer) { r.keys = k }
}

// NewRenderer wraps an uninitialized screen.
func NewRenderer(screen tcell.Screen, opts ...RendererOption) *Renderer {
	r := &Renderer{
		screen: screen,
		theme:  DefaultTheme(),
		border: newBorderRunes(PanelBorder),
		keys:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OpenTerminal creates a Renderer for the controlling terminal.
func OpenTerminal(opts ...RendererOption) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, terminalErr(err)
	}
	return NewRenderer(screen, opts...), nil
}

func terminalErr(err error) error {
	return errors.WrapWithCode(err, errors.ErrTerminal,
		"Cannot put the terminal into display mode",
		"Run sysmon from an interactive terminal with a valid TERM, or use 'sysmon snapshot'")
}

// Init takes over the terminal: hides the cursor, starts the input pump and
// lays out both panels for processRowLimit table rows.
//
// Init fails if Teardown was called first, and undoes itself if Teardown
// was called while it ran.
func (r *Renderer) Init(processRowLimit int) error {
	r.initMu.Lock()
	defer r.initMu.Unlock()

	if r.tornDown.Load() {
		return errClosedDuringInit()
	}
	if err := r.screen.Init(); err != nil {
		return terminalErr(err)
	}
	if r.tornDown.Load() {
		r.screen.Fini()
		return errClosedDuringInit()
	}

	r.screen.SetStyle(tcell.StyleDefault)
	r.screen.HideCursor()
	r.screen.DisableMouse()
	r.screen.DisablePaste()
	r.screen.Clear()

	r.limit = processRowLimit
	r.layout()

	r.events = make(chan tcell.Event, eventBuffer)
	r.quit = make(chan struct{})
	go r.screen.ChannelEvents(r.events, r.quit)

	r.ready.Store(true)
	return nil
}

func errClosedDuringInit() error {
	return errors.New(errors.ErrTerminal,
		"Display was closed before it finished starting", "")
}

// layout sizes both regions to the current screen width.
func (r *Renderer) layout() {
	w, _ := r.screen.Size()
	width := max(w-panelMargin, 0)
	r.sys = region{x: 1, y: 0, w: width, h: SystemPanelHeight}
	r.proc = region{x: 1, y: SystemPanelHeight, w: width, h: ProcessPanelHeight(r.limit)}
}

func (r *Renderer) active() bool {
	return r.ready.Load() && !r.tornDown.Load()
}

// RenderSystemPanel repaints the system summary and shows it.
func (r *Renderer) RenderSystemPanel(snap metrics.Snapshot) {
	if !r.active() {
		return
	}
	r.paint(r.sys, SystemPanelLines(snap, r.keys.QuitHint()))
}

// RenderProcessPanel repaints the process table and shows it.
func (r *Renderer) RenderProcessPanel(rows []metrics.ProcessRow, limit int) {
	if !r.active() {
		return
	}
	r.paint(r.proc, ProcessPanelLines(rows, limit))
}

func (r *Renderer) paint(reg region, lines []Line) {
	base := tcell.StyleDefault
	reg.clear(r.screen, base)
	reg.box(r.screen, r.border, base)
	for _, l := range lines {
		reg.print(r.screen, l.Row, l.Col, l.Text, r.theme.CellStyle(l.Role))
	}
	r.screen.Show()
}

// PollInput drains pending terminal events without blocking. A quit or
// interrupt key wins over anything else queued; resizes re-layout the panels.
func (r *Renderer) PollInput() Input {
	if !r.active() {
		return InputNone
	}
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return InputNone
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in := r.keys.Classify(ev); in != InputNone {
					return in
				}
			case *tcell.EventResize:
				r.screen.Sync()
				r.layout()
			}
		default:
			return InputNone
		}
	}
}

// Teardown restores the terminal. Only the first call does anything, so the
// render loop and the supervisor may both call it.
func (r *Renderer) Teardown() {
	if !r.tornDown.CompareAndSwap(false, true) {
		return
	}
	r.initMu.Lock()
	defer r.initMu.Unlock()
	if !r.ready.Load() {
		return
	}
	close(r.quit)
	r.screen.Fini()
}
