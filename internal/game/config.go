package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// FrontendKind selects how the game is displayed.
type FrontendKind string

const (
	// FrontendWindow renders bitmap tiles in a desktop window.
	FrontendWindow FrontendKind = "window"
	// FrontendTerminal renders glyph tiles in the terminal.
	FrontendTerminal FrontendKind = "terminal"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	Frontend FrontendKind `env:"MEMORY_FRONTEND" envDefault:"window"`

	// AssetDir holds image0.bmp (the back) through image8.bmp.
	AssetDir string `env:"MEMORY_ASSET_DIR" envDefault:"."`

	// Seed for the deck shuffle. A seed of 0 means a random seed will be generated.
	Seed int64 `env:"MEMORY_SEED"`

	// TickRate is the number of frames run per second.
	TickRate int `env:"MEMORY_TICK_RATE" envDefault:"60"`

	// HideDelay is how long a mismatched pair stays visible before flipping back.
	HideDelay time.Duration `env:"MEMORY_HIDE_DELAY" envDefault:"300ms"`

	Telemetry bool   `env:"MEMORY_TELEMETRY"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"MEMORY_LOG_FILE"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Frontend:  FrontendWindow,
		AssetDir:  ".",
		TickRate:  60,
		HideDelay: 300 * time.Millisecond,
		LogLevel:  "info",
	}
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.HideDelay < 0 {
		return fmt.Errorf("%w: hide delay must not be negative, got %s", ErrInvalidConfig, c.HideDelay)
	}
	return nil
}

// TickInterval is the time budget of one frame.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// newRand returns the shuffle source and the seed it was built from.
func (c Config) newRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
