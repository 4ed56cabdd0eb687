// Package board provides the memory grid: tiles, the shuffled deck and pair resolution.
package board

import "time"

// BorderWidth is the outline width drawn around every tile.
const BorderWidth = 3

// Point is a position in surface coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside the rectangle.
// The right and bottom edges are exclusive so adjacent tiles never overlap.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Image is a renderable picture handed out by an ImageProvider.
// Two tiles show the same face when they hold the same Image value.
type Image interface {
	Size() (width, height int)
}

// Surface is the drawing target tiles render onto.
type Surface interface {
	DrawImage(img Image, at Point)
	StrokeRect(r Rect, width int)
}

// Tile is a single grid cell that is either covered (showing the back image)
// or uncovered (showing its face).
type Tile struct {
	rect    Rect
	face    Image
	back    Image
	covered bool

	// peekUntil keeps the face on screen after a mismatch re-covered the tile.
	peekUntil time.Time
	peeking   bool
}

// NewTile creates a covered tile occupying rect.
func NewTile(rect Rect, face, back Image) *Tile {
	return &Tile{
		rect:    rect,
		face:    face,
		back:    back,
		covered: true,
	}
}

// Select uncovers the tile if p hits it and it is still covered.
// It returns true only for a new reveal.
func (t *Tile) Select(p Point) bool {
	if !t.rect.Contains(p) || !t.covered {
		return false
	}
	t.covered = false
	t.peeking = false
	return true
}

// IsUncovered reports whether the tile shows its face.
func (t *Tile) IsUncovered() bool {
	return !t.covered
}

// Hide covers the tile. The face stays visible until the given deadline so the
// player can see a mismatched pair before it flips back.
func (t *Tile) Hide(until time.Time) {
	t.covered = true
	t.peekUntil = until
	t.peeking = !until.IsZero()
}

// Settle ends an expired mismatch peek.
func (t *Tile) Settle(now time.Time) {
	if t.peeking && !now.Before(t.peekUntil) {
		t.peeking = false
	}
}

// Peeking reports whether a covered tile is still displaying its face.
func (t *Tile) Peeking() bool {
	return t.peeking
}

// SameContentAs reports whether both tiles carry the same face image.
func (t *Tile) SameContentAs(other *Tile) bool {
	return other != nil && t.face == other.face
}

// Rect returns the area the tile occupies.
func (t *Tile) Rect() Rect {
	return t.rect
}

// Face returns the tile's face image.
func (t *Tile) Face() Image {
	return t.face
}

// Visible returns the image currently rendered for the tile.
func (t *Tile) Visible() Image {
	if t.covered && !t.peeking {
		return t.back
	}
	return t.face
}

// Draw renders the tile and its border.
func (t *Tile) Draw(s Surface) {
	s.DrawImage(t.Visible(), t.rect.Origin())
	s.StrokeRect(t.rect, BorderWidth)
}
