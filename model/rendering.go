package model

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	// QuitKey stops the simulation
	QuitKey = 'q'

	// DefaultAliveGlyph is drawn for living cells
	DefaultAliveGlyph = 'O'
	deadGlyph         = ' '

	eventBufferSize = 64
)

// Surface is everything the simulation needs from a display
type Surface interface {
	// Dimensions reports the drawable size in character cells
	Dimensions() (width, height int)
	// Render draws one generation and makes it visible
	Render(g *Grid)
	// PollInput returns a pending key press without blocking
	PollInput() (key rune, ok bool)
}

// TerminalRenderer draws grids to a tcell screen, one character per cell
type TerminalRenderer struct {
	screen tcell.Screen
	glyph  rune
	style  tcell.Style

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewTerminalRenderer opens the process terminal. The caller must Close it.
func NewTerminalRenderer(glyph rune) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to create screen")
	}
	return NewScreenRenderer(screen, glyph)
}

// NewScreenRenderer initializes screen and starts forwarding its events
func NewScreenRenderer(screen tcell.Screen, glyph rune) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()

	r := &TerminalRenderer{
		screen: screen,
		glyph:  glyph,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event, eventBufferSize),
		done:   make(chan struct{}),
	}
	go r.pumpEvents()

	return r, nil
}

// pumpEvents turns the blocking PollEvent into a channel PollInput can drain
func (r *TerminalRenderer) pumpEvents() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		select {
		case r.events <- ev:
		case <-r.done:
			return
		}
	}
}

// Dimensions returns the screen size in cells
func (r *TerminalRenderer) Dimensions() (int, int) {
	return r.screen.Size()
}

// Render draws the grid row by row and shows the frame
func (r *TerminalRenderer) Render(g *Grid) {
	for y, h := 0, g.Height(); y < h; y++ {
		for x, w := 0, g.Width(); x < w; x++ {
			ch := rune(deadGlyph)
			if g.Get(x, y) {
				ch = r.glyph
			}
			r.screen.SetContent(x, y, ch, nil, r.style)
		}
	}
	r.screen.Show()
}

// PollInput drains pending events and returns the first key press, if any.
// Ctrl+C is reported as QuitKey since the terminal is in raw mode.
func (r *TerminalRenderer) PollInput() (rune, bool) {
	for {
		select {
		case ev := <-r.events:
			keyEv, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if isInterrupt(keyEv) {
				return QuitKey, true
			}
			if keyEv.Key() == tcell.KeyRune {
				return keyEv.Rune(), true
			}
		default:
			return 0, false
		}
	}
}

// isInterrupt matches Ctrl+C whether reported as a control key or a modified rune
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}

// Close releases the terminal. Safe to call more than once.
func (r *TerminalRenderer) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
		r.screen.Fini()
	})
}
