// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying accepts clicks and advances the score.
	StatePlaying State = iota
	// StateComplete is reached once every tile is uncovered; the score is frozen.
	StateComplete
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}
