// Package config holds the tunable rules of a session and their command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Renderer names accepted by the -renderer flag
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config holds the simulation rules and frontend choices
type Config struct {
	GridSize    int // side length of the board
	ClearLength int // shortest run of settled cells that clears

	BaseCadence int // ticks between automatic advances at speed 0
	MinCadence  int // fastest cadence regardless of speed
	SpeedStep   int // ticks removed from the cadence per speed level
	SpeedEvery  int // score needed per speed level
	MaxSpeed    int

	PointsPerCell   int // score per cleared cell
	PointsPerFigure int // score per landed figure

	Seed int64 // 0 picks a time-based seed

	Renderer   string
	Locale     string
	LocaleDir  string // root of the message catalogues
	CellPixels int    // ebiten cell size
	LogFile    string // log destination; empty logs to stderr
}

// Default returns the reference rules
func Default() Config {
	return Config{
		GridSize:        34,
		ClearLength:     17,
		BaseCadence:     45,
		MinCadence:      5,
		SpeedStep:       3,
		SpeedEvery:      500,
		MaxSpeed:        13,
		PointsPerCell:   10,
		PointsPerFigure: 5,
		Renderer:        RendererEbiten,
		Locale:          "en_GB",
		LocaleDir:       "locales",
		CellPixels:      6,
	}
}

// RegisterFlags binds the config fields to flags on fs
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "size", c.GridSize, "board side length (even)")
	fs.IntVar(&c.ClearLength, "clear", c.ClearLength, "shortest run of settled cells that clears")
	fs.IntVar(&c.BaseCadence, "cadence", c.BaseCadence, "ticks between automatic advances at speed 0")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 for time-based)")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "frontend: ebiten or tui")
	fs.StringVar(&c.Locale, "locale", c.Locale, "language for on-screen text")
	fs.StringVar(&c.LocaleDir, "locales", c.LocaleDir, "directory holding the message catalogues")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write the log to this file (tui defaults to kektris.log)")
	fs.IntVar(&c.CellPixels, "cell", c.CellPixels, "cell size in pixels (ebiten)")
}

// Validate checks that the rules describe a playable board
func (c Config) Validate() error {
	switch {
	case c.GridSize < 8 || c.GridSize%2 != 0:
		return fmt.Errorf("%w: size %d must be even and at least 8", ErrInvalidConfig, c.GridSize)
	case c.ClearLength <= 0 || c.ClearLength > c.GridSize:
		return fmt.Errorf("%w: clear length %d out of range 1..%d", ErrInvalidConfig, c.ClearLength, c.GridSize)
	case c.MinCadence <= 0 || c.BaseCadence < c.MinCadence:
		return fmt.Errorf("%w: cadence %d below minimum %d", ErrInvalidConfig, c.BaseCadence, c.MinCadence)
	case c.SpeedEvery <= 0:
		return fmt.Errorf("%w: speed-every must be positive", ErrInvalidConfig)
	case c.Renderer != RendererEbiten && c.Renderer != RendererTUI:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	case c.CellPixels <= 0:
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Cadence returns the ticks between automatic advances at the given speed
func (c Config) Cadence(speed int) int {
	cadence := c.BaseCadence - speed*c.SpeedStep
	if cadence < c.MinCadence {
		return c.MinCadence
	}
	return cadence
}

// SpeedFor returns the speed level reached at the given score
func (c Config) SpeedFor(score int) int {
	speed := score / c.SpeedEvery
	if c.MaxSpeed > 0 && speed > c.MaxSpeed {
		return c.MaxSpeed
	}
	return speed
}
