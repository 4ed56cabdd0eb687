package ui

import (
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/memory/internal/assets"
	"github.com/samdwyer/memory/internal/board"
	"github.com/samdwyer/memory/internal/game"
)

const eventBuffer = 64

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorBlack)
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

// Terminal draws glyph tiles on a Screen and turns mouse releases into game events.
type Terminal struct {
	screen *Screen
	events chan tcell.Event
	done   chan struct{}
	exited chan struct{}
	once   sync.Once

	// pressed tracks the left button so a release can be told from a move.
	pressed bool
}

// NewTerminal starts reading events from screen. Events are only forwarded
// here; they are translated and applied on the game loop's goroutine.
func NewTerminal(screen *Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go t.forward()
	return t
}

// forward stops when the screen is finalized or Close is called, even if
// nobody drains the buffer any more.
func (t *Terminal) forward() {
	defer close(t.exited)
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close stops forwarding events. The screen itself is closed by its owner.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
	})
}

// PollEvents drains pending terminal events without blocking.
func (t *Terminal) PollEvents() []game.Event {
	var out []game.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(out, game.CloseRequest{})
			}
			if ge := t.translate(ev); ge != nil {
				out = append(out, ge)
			}
		default:
			return out
		}
	}
}

// translate maps a tcell event to a game event, or nil when it has no meaning to the game.
func (t *Terminal) translate(ev tcell.Event) game.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			t.pressed = true
			return nil
		}
		if t.pressed {
			t.pressed = false
			x, y := ev.Position()
			return game.PointerUp{At: board.Point{X: x, Y: y}}
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return game.CloseRequest{}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return game.CloseRequest{}
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return nil
}

// Clear clears the screen buffer.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// DrawImage fills the tile area with the glyph's color and puts its character in the middle.
func (t *Terminal) DrawImage(img board.Image, at board.Point) {
	g, ok := img.(*assets.Glyph)
	if !ok {
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t.screen.SetContent(at.X+x, at.Y+y, ' ', g.Style)
		}
	}
	t.screen.SetContent(at.X+g.Width/2, at.Y+g.Height/2, g.Rune, g.Style)
}

// StrokeRect outlines r with box-drawing characters. Cells cannot be
// subdivided, so any width draws a single-cell line.
func (t *Terminal) StrokeRect(r board.Rect, width int) {
	if width <= 0 || r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		t.screen.SetContent(x, r.Y, tcell.RuneHLine, borderStyle)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, borderStyle)
	}
	for y := r.Y + 1; y < bottom; y++ {
		t.screen.SetContent(r.X, y, tcell.RuneVLine, borderStyle)
		t.screen.SetContent(right, y, tcell.RuneVLine, borderStyle)
	}
	t.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, borderStyle)
	t.screen.SetContent(right, r.Y, tcell.RuneURCorner, borderStyle)
	t.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, borderStyle)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, borderStyle)
}

// DrawText writes text starting at the given cell.
func (t *Terminal) DrawText(text string, at board.Point) {
	x := at.X
	for _, r := range text {
		t.screen.SetContent(x, at.Y, r, scoreStyle)
		x++
	}
}

// TextWidth returns the number of cells text occupies.
func (t *Terminal) TextWidth(text string) int {
	return utf8.RuneCountInString(text)
}

// Present flushes the frame to the terminal.
func (t *Terminal) Present() {
	t.screen.Show()
}
