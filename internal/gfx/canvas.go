package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/samdwyer/memory/internal/board"
)

// scoreScale enlarges the 7x13 bitmap font to a readable score size.
const scoreScale = 4

var (
	backgroundColor = color.Black
	borderColor     = color.Black
	scoreColor      = color.White
	scoreFace       = basicfont.Face7x13
)

// canvas draws one frame onto the ebiten screen image.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) Clear() {
	c.dst.Fill(backgroundColor)
}

func (c *canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) DrawImage(img board.Image, at board.Point) {
	pic, ok := img.(*Picture)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	c.dst.DrawImage(pic.img, op)
}

// StrokeRect keeps the stroke inside r, like a bordered blit.
func (c *canvas) StrokeRect(r board.Rect, width int) {
	sw := float32(width)
	vector.StrokeRect(c.dst,
		float32(r.X)+sw/2, float32(r.Y)+sw/2,
		float32(r.Width)-sw, float32(r.Height)-sw,
		sw, borderColor, false)
}

func (c *canvas) DrawText(s string, at board.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(scoreFace.Metrics().Ascent.Ceil()))
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(scoreColor)
	text.DrawWithOptions(c.dst, s, scoreFace, op)
}

func (c *canvas) TextWidth(s string) int {
	return font.MeasureString(scoreFace, s).Ceil() * scoreScale
}

// Present is a no-op: ebiten shows the screen image after Draw returns.
func (c *canvas) Present() {}
