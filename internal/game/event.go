package game

import "github.com/samdwyer/memory/internal/board"

// Event is an input event delivered by a frontend.
type Event interface {
	isEvent()
}

// PointerUp is a pointer release at a surface position.
type PointerUp struct {
	At board.Point
}

// CloseRequest asks the game loop to stop, whatever the game state.
type CloseRequest struct{}

func (PointerUp) isEvent()    {}
func (CloseRequest) isEvent() {}

// Surface is the full drawing target the game renders a frame onto.
type Surface interface {
	board.Surface
	Clear()
	Size() (width, height int)
	DrawText(text string, at board.Point)
	TextWidth(text string) int
	Present()
}

// Frontend couples a surface with the input source feeding it.
type Frontend interface {
	Surface
	// PollEvents returns the events received since the last call without blocking.
	PollEvents() []Event
}
