package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/memory/internal/board"
)

// recordingSurface logs every draw call as a short string.
type recordingSurface struct {
	width, height int
	ops           []string
	texts         map[string]board.Point
	images        []board.Image
	polls         [][]Event
	presented     int
}

var _ Frontend = (*recordingSurface)(nil)

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 500, height: 400, texts: make(map[string]board.Point)}
}

func (s *recordingSurface) Clear() { s.ops = append(s.ops, "clear") }
func (s *recordingSurface) Size() (int, int) { return s.width, s.height }
func (s *recordingSurface) TextWidth(text string) int { return 10 * len(text) }

func (s *recordingSurface) Present() {
	s.ops = append(s.ops, "present")
	s.presented++
}

func (s *recordingSurface) DrawText(text string, at board.Point) {
	s.ops = append(s.ops, "text")
	s.texts[text] = at
}

func (s *recordingSurface) DrawImage(img board.Image, _ board.Point) {
	s.ops = append(s.ops, "image")
	s.images = append(s.images, img)
}

func (s *recordingSurface) StrokeRect(board.Rect, int) {
	s.ops = append(s.ops, "border")
}

func (s *recordingSurface) PollEvents() []Event {
	if len(s.polls) == 0 {
		return nil
	}
	ev := s.polls[0]
	s.polls = s.polls[1:]
	return ev
}

func TestRender(t *testing.T) {
	g, clock := newTestGame(t)
	clock.Advance(12 * time.Second)
	g.Frame(context.Background(), nil)
	require.Equal(t, 12, g.Score())

	s := newRecordingSurface()
	g.Render(s)

	require.Len(t, s.ops, 1+1+2*board.Rows*board.Cols+1)
	assert.Equal(t, "clear", s.ops[0])
	assert.Equal(t, "text", s.ops[1])
	assert.Equal(t, "present", s.ops[len(s.ops)-1])
	assert.Equal(t, board.Point{X: 480, Y: 0}, s.texts["12"])

	// Every tile is covered, so only the back image is drawn.
	back := g.Board().Tile(0, 0).Visible()
	for _, img := range s.images {
		assert.Same(t, back, img)
	}
}

func TestRenderRowMajor(t *testing.T) {
	g, _ := newTestGame(t)
	g.Board().Each(func(_, _ int, tile *board.Tile) {
		g.Frame(context.Background(), click(tile))
		g.Frame(context.Background(), nil)
	})

	s := newRecordingSurface()
	g.Render(s)

	var want []board.Image
	g.Board().Each(func(_, _ int, tile *board.Tile) {
		want = append(want, tile.Visible())
	})
	assert.Equal(t, want, s.images)
}

func TestRunStopsOnClose(t *testing.T) {
	g, _ := newTestGame(t)
	g.cfg.TickRate = 1000

	a := pairs(g.Board())[0][0]
	s := newRecordingSurface()
	s.polls = [][]Event{click(a), nil, {CloseRequest{}}}

	err := g.Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, g.Closed())
	assert.True(t, a.IsUncovered())
	assert.Equal(t, 2, s.presented)
}

func TestRunContextCancel(t *testing.T) {
	g, _ := newTestGame(t)
	g.cfg.TickRate = 1000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx, newRecordingSurface())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, g.Closed())
}
