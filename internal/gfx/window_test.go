package gfx

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/memory/internal/board"
	"github.com/samdwyer/memory/internal/game"
)

func newWindowGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	g, err := game.New(context.Background(), cfg, NewProvider(writeFaces(t)))
	require.NoError(t, err)
	return g
}

func TestWindowEvents(t *testing.T) {
	w := NewWindow(context.Background(), newWindowGame(t))

	assert.Empty(t, w.events(input{}))
	assert.Equal(t, []game.Event{game.CloseRequest{}}, w.events(input{closing: true}))
	assert.Equal(t,
		[]game.Event{game.PointerUp{At: board.Point{X: 120, Y: 30}}},
		w.events(input{released: true, cursor: board.Point{X: 120, Y: 30}}))
}

func TestWindowStepRevealsTile(t *testing.T) {
	g := newWindowGame(t)
	w := NewWindow(context.Background(), g)

	require.NoError(t, w.step(input{released: true, cursor: board.Point{X: 150, Y: 250}}))
	assert.True(t, g.Board().Tile(2, 1).IsUncovered())
	assert.False(t, g.Closed())
}

func TestWindowStepClosing(t *testing.T) {
	g := newWindowGame(t)
	w := NewWindow(context.Background(), g)

	err := w.step(input{closing: true, released: true, cursor: board.Point{X: 10, Y: 10}})
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, g.Closed())
	assert.False(t, g.Board().Tile(0, 0).IsUncovered())
}

func TestWindowStepContextCancelled(t *testing.T) {
	g := newWindowGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWindow(ctx, g)

	require.NoError(t, w.step(input{}))
	cancel()

	assert.Equal(t, []game.Event{game.CloseRequest{}}, w.events(input{}))
	assert.ErrorIs(t, w.step(input{}), ebiten.Termination)
	assert.True(t, g.Closed())
}

func TestWindowLayout(t *testing.T) {
	w := NewWindow(context.Background(), newWindowGame(t))
	width, height := w.Layout(800, 600)
	assert.Equal(t, Width, width)
	assert.Equal(t, Height, height)
}
