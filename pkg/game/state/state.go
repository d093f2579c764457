package state

import (
	"math/rand"

	"kektris/pkg/engine/world"
	"kektris/pkg/game/config"
	"kektris/pkg/game/figure"
)

// FlashTicks is how long the HUD flashes a changed score or speed
const FlashTicks = 60

// Game represents one play session: a single grid and the figure in play
type Game struct {
	Config config.Config

	Grid   *world.Grid
	Figure *figure.Figure

	Score int
	Speed int

	Paused     bool
	Over       bool
	ShowGuides bool // draw grid guide lines

	FrameCount int // ticks since the last automatic advance

	ScoreFlash int // ticks left to flash the score
	SpeedFlash int // ticks left to flash the speed

	Settled int // figures landed this session
	Cleared int // cells cleared this session

	Bag  []figure.Shape // shapes left in the current bag
	Rand *rand.Rand

	Messages []string
}

// NewGame creates a new, paused session with an empty grid and no figure
func NewGame(cfg config.Config, seed int64) *Game {
	return &Game{
		Config:   cfg,
		Grid:     world.NewGrid(cfg.GridSize),
		Paused:   true,
		Rand:     rand.New(rand.NewSource(seed)),
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddScore adds points, recomputes the speed level and starts the HUD flashes
func (g *Game) AddScore(points int) {
	if points <= 0 {
		return
	}
	g.Score += points
	g.ScoreFlash = FlashTicks

	if speed := g.Config.SpeedFor(g.Score); speed != g.Speed {
		g.Speed = speed
		g.SpeedFlash = FlashTicks
	}
}

// Cadence returns the ticks between automatic advances at the current speed
func (g *Game) Cadence() int {
	return g.Config.Cadence(g.Speed)
}

// DecayFlashes counts the HUD flash timers down by one tick
func (g *Game) DecayFlashes() {
	if g.ScoreFlash > 0 {
		g.ScoreFlash--
	}
	if g.SpeedFlash > 0 {
		g.SpeedFlash--
	}
}
