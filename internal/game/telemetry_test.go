package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGameSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	g, _ := newTestGame(t)
	ctx := context.Background()
	ps := pairs(g.Board())

	// One mismatch, then every pair in order.
	g.Frame(ctx, click(ps[0][0]))
	g.Frame(ctx, click(ps[1][0]))
	for _, p := range ps {
		g.Frame(ctx, click(p[0]))
		g.Frame(ctx, click(p[1]))
	}
	require.False(t, g.Running())

	counts := make(map[string]int)
	outcomes := make(map[string]int)
	for _, s := range exp.GetSpans() {
		counts[s.Name]++
		if s.Name != "pair.resolve" {
			continue
		}
		for _, kv := range s.Attributes {
			if kv.Key == attribute.Key("pair.outcome") {
				outcomes[kv.Value.AsString()]++
			}
		}
	}

	assert.Equal(t, 1, counts["game.init"])
	assert.Equal(t, 1+len(ps), counts["pair.resolve"])
	assert.Equal(t, 1, counts["game.complete"])
	assert.Equal(t, map[string]int{"mismatch": 1, "match": len(ps)}, outcomes)
}
