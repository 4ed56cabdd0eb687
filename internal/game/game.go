package game

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/memory/internal/board"
	"github.com/samdwyer/memory/internal/telemetry"
)

// Game holds the entire game state.
type Game struct {
	cfg    Config
	board  *board.Board
	now    func() time.Time
	start  time.Time
	score  int
	state  State
	closed bool

	// clicks holds pointer releases not yet applied to the board.
	clicks []board.Point
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for scoring and mismatch peeks.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New loads the faces from provider, shuffles them and builds the board.
// Any failure here is fatal: there is no partial game.
func New(ctx context.Context, cfg Config, provider board.ImageProvider, opts ...Option) (*Game, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g := &Game{
		cfg:   cfg,
		now:   time.Now,
		state: StatePlaying,
	}
	for _, opt := range opts {
		opt(g)
	}

	rng, seed := cfg.newRand()
	back, deck, err := board.LoadFaces(provider, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load faces")
		return nil, fmt.Errorf("load faces: %w", err)
	}

	g.board, err = board.New(back, deck, cfg.HideDelay)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build board")
		return nil, fmt.Errorf("build board: %w", err)
	}

	w, h := g.board.TileSize()
	span.SetAttributes(
		attribute.Int64("deck.seed", seed),
		attribute.Int("deck.size", len(deck)),
		attribute.Int("tile.width", w),
		attribute.Int("tile.height", h),
	)
	log.Info().
		Int64("seed", seed).
		Int("tile_width", w).
		Int("tile_height", h).
		Msg("board ready")

	g.start = g.now()
	return g, nil
}

// Frame advances the game by one tick. The steps always run in this order:
// input, resolve, settle, score, completion. Only one pointer release is
// applied per tick, so the pending pair is resolved before a third tile can
// be revealed. Further releases wait for the following ticks.
func (g *Game) Frame(ctx context.Context, events []Event) {
	g.dispatch(events)
	if g.closed || g.state != StatePlaying {
		return
	}

	if len(g.clicks) > 0 {
		p := g.clicks[0]
		g.clicks = g.clicks[1:]
		g.board.HandlePointerUp(p)
	}

	now := g.now()
	g.resolve(ctx, now)
	g.board.Settle(now)
	g.tickScore(now)
	g.checkCompletion(ctx)
}

// dispatch records input. A close request wins even after the game is complete.
func (g *Game) dispatch(events []Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case CloseRequest:
			g.closed = true
		case PointerUp:
			if g.state == StatePlaying {
				g.clicks = append(g.clicks, ev.At)
			}
		}
	}
}

// resolve compares the pending pair, if there is one.
func (g *Game) resolve(ctx context.Context, now time.Time) {
	pending := g.board.Pending()
	outcome := g.board.Resolve(now)
	if outcome == board.OutcomeNone {
		return
	}

	_, span := telemetry.Tracer("game").Start(ctx, "pair.resolve")
	span.SetAttributes(
		attribute.String("pair.outcome", outcome.String()),
		attribute.Int("board.uncovered", g.board.UncoveredCount()),
	)
	span.End()

	first, second := pending[0].Rect(), pending[1].Rect()
	log.Debug().
		Stringer("outcome", outcome).
		Ints("first", []int{first.X, first.Y}).
		Ints("second", []int{second.X, second.Y}).
		Msg("pair resolved")
}

func (g *Game) tickScore(now time.Time) {
	elapsed := int(now.Sub(g.start) / time.Second)
	if elapsed > g.score {
		g.score = elapsed
	}
}

func (g *Game) checkCompletion(ctx context.Context) {
	if !g.board.Complete() {
		return
	}
	g.state = StateComplete
	g.clicks = nil

	_, span := telemetry.Tracer("game").Start(ctx, "game.complete")
	span.SetAttributes(attribute.Int("score", g.score))
	span.End()

	log.Info().Int("score", g.score).Msg("all pairs found")
}

// Render draws the score in the top-right corner and every tile, then presents the frame.
func (g *Game) Render(s Surface) {
	s.Clear()

	text := strconv.Itoa(g.score)
	width, _ := s.Size()
	s.DrawText(text, board.Point{X: width - s.TextWidth(text), Y: 0})

	g.board.Draw(s)
	s.Present()
}

// Run drives frames at the configured tick rate until a close request
// arrives or ctx is cancelled.
func (g *Game) Run(ctx context.Context, fe Frontend) error {
	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	for {
		g.Frame(ctx, fe.PollEvents())
		if g.closed {
			return nil
		}
		g.Render(fe)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Score returns the elapsed whole seconds shown to the player.
func (g *Game) Score() int {
	return g.score
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the game still accepts clicks.
func (g *Game) Running() bool {
	return g.state == StatePlaying
}

// Closed reports whether a close request has been received.
func (g *Game) Closed() bool {
	return g.closed
}

// Board returns the tile grid.
func (g *Game) Board() *board.Board {
	return g.board
}
