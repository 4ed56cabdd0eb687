package assets

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/memory/internal/board"
)

// ErrUnknownFace is returned when a provider has no image for an index.
var ErrUnknownFace = errors.New("unknown face")

// FaceDef defines a terminal tile face loaded from JSON.
type FaceDef struct {
	Index      int    `json:"index"`      // Provider index (0 is the back)
	Name       string `json:"name"`       // Display name (e.g., "sun")
	Glyph      string `json:"glyph"`      // Single character drawn in the tile center
	Color      string `json:"color"`      // Hex foreground color
	Background string `json:"background"` // Hex fill color
}

// ThemeFile represents the structure of faces.json.
type ThemeFile struct {
	Width  int       `json:"width"`  // Tile width in cells
	Height int       `json:"height"` // Tile height in cells
	Back   FaceDef   `json:"back"`
	Faces  []FaceDef `json:"faces"`
}

// LoadTheme loads the terminal face theme from the embedded faces.json file.
func LoadTheme() (ThemeFile, error) {
	return Load[ThemeFile]("faces.json")
}

// Glyph is a terminal tile face: one character on a colored fill.
type Glyph struct {
	Index  int
	Name   string
	Rune   rune
	Style  tcell.Style
	Width  int
	Height int
}

// Size returns the tile size in cells.
func (g *Glyph) Size() (int, int) {
	return g.Width, g.Height
}

func newGlyph(def FaceDef, width, height int) (*Glyph, error) {
	fg, err := ParseHexColor(def.Color)
	if err != nil {
		return nil, fmt.Errorf("face %q color: %w", def.Name, err)
	}
	bg, err := ParseHexColor(def.Background)
	if err != nil {
		return nil, fmt.Errorf("face %q background: %w", def.Name, err)
	}

	r := '?'
	if len(def.Glyph) > 0 {
		r = []rune(def.Glyph)[0]
	}

	return &Glyph{
		Index:  def.Index,
		Name:   def.Name,
		Rune:   r,
		Style:  tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true),
		Width:  width,
		Height: height,
	}, nil
}

// GlyphProvider hands out one shared *Glyph per index.
type GlyphProvider struct {
	glyphs map[int]*Glyph
}

// NewGlyphProvider builds glyphs for every face of the theme.
func NewGlyphProvider(theme ThemeFile) (*GlyphProvider, error) {
	p := &GlyphProvider{glyphs: make(map[int]*Glyph, len(theme.Faces)+1)}
	for _, def := range append([]FaceDef{theme.Back}, theme.Faces...) {
		if _, dup := p.glyphs[def.Index]; dup {
			return nil, fmt.Errorf("duplicate face index %d", def.Index)
		}
		g, err := newGlyph(def, theme.Width, theme.Height)
		if err != nil {
			return nil, err
		}
		p.glyphs[def.Index] = g
	}
	return p, nil
}

// LoadGlyphProvider creates a provider from the embedded theme.
func LoadGlyphProvider() (*GlyphProvider, error) {
	theme, err := LoadTheme()
	if err != nil {
		return nil, err
	}
	return NewGlyphProvider(theme)
}

// Image returns the glyph for index.
func (p *GlyphProvider) Image(index int) (board.Image, error) {
	g, ok := p.glyphs[index]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, index)
	}
	return g, nil
}

// Count returns the number of glyphs, the back included.
func (p *GlyphProvider) Count() int {
	return len(p.glyphs)
}
