package gfx

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samdwyer/memory/internal/board"
	"github.com/samdwyer/memory/internal/game"
)

const (
	// Window size in pixels.
	Width  = 500
	Height = 400

	title = "Memory"
)

// Window adapts a Game to ebiten's Update/Draw cycle.
type Window struct {
	ctx  context.Context
	game *game.Game
}

// NewWindow wraps g. Cancelling ctx closes the window on the next tick.
func NewWindow(ctx context.Context, g *game.Game) *Window {
	return &Window{ctx: ctx, game: g}
}

// input is the pointer and window state sampled at the start of a tick.
type input struct {
	closing  bool
	released bool
	cursor   board.Point
}

// Update runs one game frame with the input gathered since the last tick.
func (w *Window) Update() error {
	in := input{
		closing:  ebiten.IsWindowBeingClosed(),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	if in.released {
		x, y := ebiten.CursorPosition()
		in.cursor = board.Point{X: x, Y: y}
	}
	return w.step(in)
}

func (w *Window) step(in input) error {
	w.game.Frame(w.ctx, w.events(in))
	if w.game.Closed() {
		return ebiten.Termination
	}
	return nil
}

// events turns a tick's input into game events. Closing the window and
// cancelling the context both request a close.
func (w *Window) events(in input) []game.Event {
	var events []game.Event
	if in.closing || w.ctx.Err() != nil {
		events = append(events, game.CloseRequest{})
	}
	if in.released {
		events = append(events, game.PointerUp{At: in.cursor})
	}
	return events
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(&canvas{dst: screen})
}

// Layout keeps the logical screen at the fixed window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return Width, Height
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, g *game.Game, tickRate int) error {
	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tickRate)

	return ebiten.RunGame(NewWindow(ctx, g))
}
