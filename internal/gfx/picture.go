// Package gfx renders the game in a desktop window with ebiten.
package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samdwyer/memory/internal/assets"
	"github.com/samdwyer/memory/internal/board"
)

// Picture is a face bitmap uploaded to the GPU.
type Picture struct {
	Index int
	img   *ebiten.Image
}

// Size returns the bitmap size in pixels.
func (p *Picture) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// Provider loads image0.bmp through image8.bmp from a directory, once per index.
type Provider struct {
	dir      string
	pictures map[int]*Picture
}

// NewProvider creates a provider reading bitmaps from dir.
func NewProvider(dir string) *Provider {
	return &Provider{
		dir:      dir,
		pictures: make(map[int]*Picture),
	}
}

// Image returns the picture for index, decoding it on first use.
func (p *Provider) Image(index int) (board.Image, error) {
	if pic, ok := p.pictures[index]; ok {
		return pic, nil
	}

	src, err := assets.DecodeBMP(p.dir, index)
	if err != nil {
		return nil, err
	}

	pic := &Picture{Index: index, img: ebiten.NewImageFromImage(src)}
	p.pictures[index] = pic
	return pic, nil
}
