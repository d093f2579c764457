// Package gameplay runs a session: spawning figures, evaluating ticks,
// settling landed figures and reacting to player intents.
package gameplay

import (
	"fmt"
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"kektris/pkg/engine/world"
	"kektris/pkg/game/config"
	"kektris/pkg/game/figure"
	"kektris/pkg/game/state"
)

// NewGame validates the config and creates a paused session with its first figure
func NewGame(cfg config.Config) (*state.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := state.NewGame(cfg, seed)
	if err := Spawn(g); err != nil {
		return nil, err
	}
	logMessage(g, "Press P to start")
	return g, nil
}

// Reset discards the grid and counters and starts over with a new figure.
// The random stream continues, so a reset game differs from the previous one.
func Reset(g *state.Game) error {
	g.Grid = world.NewGrid(g.Config.GridSize)
	g.Figure = nil
	g.Score = 0
	g.Speed = 0
	g.Paused = true
	g.Over = false
	g.FrameCount = 0
	g.ScoreFlash = 0
	g.SpeedFlash = 0
	g.Settled = 0
	g.Cleared = 0
	g.Bag = nil

	g.ClearMessages()
	log.Printf("game reset")
	logMessage(g, "Game reset")
	return Spawn(g)
}

// TogglePause suspends or resumes tick evaluation
func TogglePause(g *state.Game) {
	if g.Over {
		return
	}
	g.Paused = !g.Paused
}

// Spawn places a new figure in a random arrival band
func Spawn(g *state.Game) error {
	shape := nextShape(g)
	o := figure.Orientation{
		Shape:    shape,
		Rotation: figure.RotL + figure.Rotation(g.Rand.Intn(4)),
	}

	edges := world.AllDirections()
	edge := edges[g.Rand.Intn(len(edges))]
	origins := figure.ZonesFor(g.Grid.Size()).Origins(edge)
	origin := origins[g.Rand.Intn(len(origins))]

	f, err := figure.Spawn(origin, o, g.Grid)
	if err != nil {
		return fmt.Errorf("spawn %v at %v: %w", o, origin, err)
	}
	g.Figure = f
	g.FrameCount = 0
	return nil
}

// nextShape draws from a bag holding each shape once, refilled when empty
func nextShape(g *state.Game) figure.Shape {
	if len(g.Bag) == 0 {
		g.Bag = figure.AllShapes()
	}
	i := g.Rand.Intn(len(g.Bag))
	shape := g.Bag[i]
	g.Bag = append(g.Bag[:i], g.Bag[i+1:]...)
	return shape
}

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
