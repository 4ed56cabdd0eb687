// Package main is the entry point for Memory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/memory/internal/assets"
	"github.com/samdwyer/memory/internal/game"
	"github.com/samdwyer/memory/internal/gfx"
	"github.com/samdwyer/memory/internal/telemetry"
	"github.com/samdwyer/memory/internal/ui"
)

func main() {
	os.Exit(run())
}

// run wires the game together and returns the process exit code. Errors are
// reported here rather than with log.Fatal so deferred cleanup still runs.
func run() int {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}

	logFile := setupLogging(cfg)
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	switch cfg.Frontend {
	case game.FrontendTerminal:
		err = runTerminal(ctx, cfg)
	default:
		err = runWindow(ctx, cfg)
	}
	if err != nil {
		log.Error().Err(err).Str("frontend", string(cfg.Frontend)).Msg("game error")
		return 1
	}
	return 0
}

func runWindow(ctx context.Context, cfg game.Config) error {
	g, err := game.New(ctx, cfg, gfx.NewProvider(cfg.AssetDir))
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	return gfx.Run(ctx, g, cfg.TickRate)
}

func runTerminal(ctx context.Context, cfg game.Config) error {
	provider, err := assets.LoadGlyphProvider()
	if err != nil {
		return fmt.Errorf("load glyph theme: %w", err)
	}
	g, err := game.New(ctx, cfg, provider)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	term := ui.NewTerminal(screen)
	defer term.Close()

	return g.Run(ctx, term)
}

// setupLogging configures the global zerolog logger. The terminal frontend
// owns stdout and stderr, so its logs go to MEMORY_LOG_FILE or nowhere.
func setupLogging(cfg game.Config) *os.File {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	var file *os.File
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.LogFile).Msg("cannot open log file")
			break
		}
		out, file = f, f
	case cfg.Frontend == game.FrontendTerminal:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return file
}

// setupOTelEnv fills the OTLP exporter variables from the Honeycomb ones.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_MEMORY_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MEMORY_DATASET")
	if dataset == "" {
		dataset = "memory"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
