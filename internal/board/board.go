package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// Grid dimensions.
	Rows = 4
	Cols = 4

	// Pairs is the number of distinct faces on the board.
	Pairs = Rows * Cols / 2

	// BackIndex is the provider index of the shared hidden-face image.
	BackIndex = 0
)

var (
	// ErrDeckSize is returned when the deck does not fill the grid exactly.
	ErrDeckSize = errors.New("deck size does not match grid")
	// ErrFaceSize is returned when images do not share one width and height.
	ErrFaceSize = errors.New("images differ in size")
)

// ImageProvider resolves face images by index: BackIndex for the hidden face
// and 1..Pairs for the faces.
type ImageProvider interface {
	Image(index int) (Image, error)
}

// Outcome is the result of resolving the pending pair.
type Outcome int

const (
	// OutcomeNone means fewer than two tiles were pending.
	OutcomeNone Outcome = iota
	// OutcomeMatch means both pending tiles stay uncovered.
	OutcomeMatch
	// OutcomeMismatch means both pending tiles were re-covered.
	OutcomeMismatch
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Board is the 4x4 grid of tiles plus the tiles awaiting comparison.
type Board struct {
	tiles     [Rows][Cols]*Tile
	pending   []*Tile
	tileW     int
	tileH     int
	hideDelay time.Duration
}

// LoadFaces fetches the back image and the Pairs faces from p, then returns
// the back image and a shuffled deck holding every face twice.
func LoadFaces(p ImageProvider, rng *rand.Rand) (Image, []Image, error) {
	back, err := p.Image(BackIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("load back image: %w", err)
	}

	deck := make([]Image, 0, Pairs*2)
	for i := 1; i <= Pairs; i++ {
		img, err := p.Image(i)
		if err != nil {
			return nil, nil, fmt.Errorf("load face %d: %w", i, err)
		}
		deck = append(deck, img)
	}
	deck = append(deck, deck...)

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return back, deck, nil
}

// New lays the deck out row-major into the grid. Every image, the back
// included, must have the same dimensions.
func New(back Image, deck []Image, hideDelay time.Duration) (*Board, error) {
	if len(deck) != Rows*Cols {
		return nil, fmt.Errorf("%w: got %d images, want %d", ErrDeckSize, len(deck), Rows*Cols)
	}

	w, h := back.Size()
	for i, img := range deck {
		if iw, ih := img.Size(); iw != w || ih != h {
			return nil, fmt.Errorf("%w: image %d is %dx%d, back is %dx%d", ErrFaceSize, i, iw, ih, w, h)
		}
	}

	b := &Board{
		pending:   make([]*Tile, 0, 2),
		tileW:     w,
		tileH:     h,
		hideDelay: hideDelay,
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			rect := Rect{X: col * w, Y: row * h, Width: w, Height: h}
			b.tiles[row][col] = NewTile(rect, deck[row*Cols+col], back)
		}
	}
	return b, nil
}

// HandlePointerUp selects tiles at p and queues every new reveal for
// resolution. All tiles are checked in row-major order. It is a no-op while a
// full pair is still pending and returns the number of tiles revealed.
func (b *Board) HandlePointerUp(p Point) int {
	if len(b.pending) >= 2 {
		return 0
	}

	revealed := 0
	for row := range b.tiles {
		for _, t := range b.tiles[row] {
			if t.Select(p) {
				b.pending = append(b.pending, t)
				revealed++
			}
		}
	}
	return revealed
}

// Resolve compares the first two pending tiles once two are queued. A
// mismatched pair is re-covered with its faces left on screen until
// now+hideDelay. The pending list is emptied after every comparison.
func (b *Board) Resolve(now time.Time) Outcome {
	if len(b.pending) < 2 {
		return OutcomeNone
	}

	first, second := b.pending[0], b.pending[1]
	b.pending = b.pending[:0]

	if first.SameContentAs(second) {
		return OutcomeMatch
	}

	until := now.Add(b.hideDelay)
	first.Hide(until)
	second.Hide(until)
	return OutcomeMismatch
}

// Settle ends any mismatch peeks whose deadline has passed.
func (b *Board) Settle(now time.Time) {
	b.Each(func(_, _ int, t *Tile) {
		t.Settle(now)
	})
}

// UncoveredCount returns how many tiles currently show their face.
func (b *Board) UncoveredCount() int {
	count := 0
	b.Each(func(_, _ int, t *Tile) {
		if t.IsUncovered() {
			count++
		}
	})
	return count
}

// Complete reports whether every tile is uncovered.
func (b *Board) Complete() bool {
	return b.UncoveredCount() == Rows*Cols
}

// Pending returns a copy of the tiles awaiting comparison.
func (b *Board) Pending() []*Tile {
	out := make([]*Tile, len(b.pending))
	copy(out, b.pending)
	return out
}

// Tile returns the tile at the given grid position, or nil if out of range.
func (b *Board) Tile(row, col int) *Tile {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return nil
	}
	return b.tiles[row][col]
}

// Each calls fn for every tile in row-major order.
func (b *Board) Each(fn func(row, col int, t *Tile)) {
	for row := range b.tiles {
		for col, t := range b.tiles[row] {
			fn(row, col, t)
		}
	}
}

// TileSize returns the shared tile width and height.
func (b *Board) TileSize() (width, height int) {
	return b.tileW, b.tileH
}

// Draw renders every tile in row-major order.
func (b *Board) Draw(s Surface) {
	b.Each(func(_, _ int, t *Tile) {
		t.Draw(s)
	})
}
