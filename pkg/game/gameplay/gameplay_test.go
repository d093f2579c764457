package gameplay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "kektris/pkg/engine/input"
	"kektris/pkg/engine/world"
	"kektris/pkg/game/config"
	"kektris/pkg/game/figure"
	"kektris/pkg/game/state"
)

var orientationIL = figure.Orientation{Shape: figure.ShapeI, Rotation: figure.RotL}

// newRunningGame returns an unpaused game with an I figure arriving from the
// left edge at row 21.
func newRunningGame(t *testing.T, mutate ...func(*config.Config)) *state.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	for _, m := range mutate {
		m(&cfg)
	}
	g := state.NewGame(cfg, cfg.Seed)
	f, err := figure.Spawn(world.Pos{X: -4, Y: 21}, orientationIL, g.Grid)
	require.NoError(t, err)
	g.Figure = f
	g.Paused = false
	return g
}

func frozenPositions(grid *world.Grid) []world.Pos {
	var out []world.Pos
	for _, c := range grid.FrozenCells() {
		out = append(out, c.Pos())
	}
	return out
}

func TestNewGame_StartsPausedWithFigure(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42

	g, err := NewGame(cfg)
	require.NoError(t, err)
	assert.True(t, g.Paused)
	assert.False(t, g.Over)
	require.NotNil(t, g.Figure)
	assert.False(t, g.Figure.OnGrid(), "a new figure waits in its arrival band")
	assert.Contains(t, g.Messages, "Press P to start")
}

func TestNewGame_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 33

	_, err := NewGame(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSpawn_BagDealsEveryShape(t *testing.T) {
	g := state.NewGame(config.Default(), 3)

	seen := make(map[figure.Shape]int)
	for i := 0; i < figure.ShapeCount; i++ {
		require.NoError(t, Spawn(g))
		seen[g.Figure.Shape()]++

		_, ok := figure.ZonesFor(g.Grid.Size()).TravelFrom(g.Figure.Window().TopLeft())
		assert.True(t, ok, "figure spawned outside every arrival band")
	}
	assert.Len(t, seen, figure.ShapeCount)
	assert.Empty(t, g.Bag)
}

func TestTick_PausedDoesNothing(t *testing.T) {
	g := newRunningGame(t)
	g.Paused = true

	require.NoError(t, Tick(g, Input{Move: world.Down}))
	assert.Equal(t, world.Pos{X: -4, Y: 21}, g.Figure.Window().TopLeft())
	assert.Zero(t, g.FrameCount)
}

func TestTick_AdvancesOnCadence(t *testing.T) {
	g := newRunningGame(t)
	start := g.Figure.Window().TopLeft()

	for i := 0; i < g.Cadence()-1; i++ {
		require.NoError(t, Tick(g, Input{}))
	}
	assert.Equal(t, start, g.Figure.Window().TopLeft())

	require.NoError(t, Tick(g, Input{}))
	assert.Equal(t, start.Add(1, 0), g.Figure.Window().TopLeft())
	assert.Zero(t, g.FrameCount)
}

func TestTick_MoveInput(t *testing.T) {
	g := newRunningGame(t)

	require.NoError(t, Tick(g, Input{Move: world.Down}))
	assert.Equal(t, world.Pos{X: -4, Y: 22}, g.Figure.Window().TopLeft())

	// Reversing the travel direction is ignored
	require.NoError(t, Tick(g, Input{Move: world.Left}))
	assert.Equal(t, world.Pos{X: -4, Y: 22}, g.Figure.Window().TopLeft())
	assert.Equal(t, 2, g.FrameCount)
}

func TestTick_RotateSkipsSquare(t *testing.T) {
	g := newRunningGame(t)
	f, err := figure.Spawn(world.Pos{X: 10, Y: -4}, figure.Orientation{Shape: figure.ShapeO, Rotation: figure.RotL}, g.Grid)
	require.NoError(t, err)
	g.Figure = f

	require.NoError(t, Tick(g, Input{Rotate: world.Right}))
	assert.Equal(t, figure.RotL, g.Figure.Orientation().Rotation)
}

func TestTick_RotateInput(t *testing.T) {
	g := newRunningGame(t)

	require.NoError(t, Tick(g, Input{Rotate: world.Right}))
	assert.Equal(t, figure.RotU, g.Figure.Orientation().Rotation)
}

func TestTick_SidewaysMoveStaysOnBoard(t *testing.T) {
	g := newRunningGame(t)
	f, err := figure.Spawn(world.Pos{X: -4, Y: 0}, orientationIL, g.Grid)
	require.NoError(t, err)
	g.Figure = f

	for i := 0; i < 4; i++ {
		require.NoError(t, Tick(g, Input{Move: world.Up}))
	}
	assert.Equal(t, world.Pos{X: -4, Y: 0}, g.Figure.Window().TopLeft())

	require.NoError(t, Tick(g, Input{Move: world.Down}))
	assert.Equal(t, world.Pos{X: -4, Y: 1}, g.Figure.Window().TopLeft())

	// the figure still lands where its lane meets the freeze line
	for i := 0; i < 9000 && g.Settled == 0 && !g.Over; i++ {
		require.NoError(t, Tick(g, Input{}))
	}
	assert.False(t, g.Over)
	assert.Equal(t, 1, g.Settled)
	assert.Contains(t, frozenPositions(g.Grid), world.Pos{X: 16, Y: 1})
}

func TestTick_RotationStaysOnBoard(t *testing.T) {
	g := newRunningGame(t)
	f, err := figure.Spawn(world.Pos{X: 0, Y: -4}, orientationIL, g.Grid)
	require.NoError(t, err)
	g.Figure = f

	// I_L occupies window column 1, so one step left keeps it in column 0
	require.NoError(t, Tick(g, Input{Move: world.Left}))
	assert.Equal(t, world.Pos{X: -1, Y: -4}, g.Figure.Window().TopLeft())
	require.NoError(t, Tick(g, Input{Move: world.Left}))
	assert.Equal(t, world.Pos{X: -1, Y: -4}, g.Figure.Window().TopLeft())

	// the horizontal bar would hang over the left edge
	require.NoError(t, Tick(g, Input{Rotate: world.Right}))
	assert.Equal(t, figure.RotL, g.Figure.Orientation().Rotation)
}

func TestAdvance_FigureCrossingBoardIsReplaced(t *testing.T) {
	g := newRunningGame(t)
	w, err := figure.NewWindow(world.Pos{X: -4, Y: -4}, orientationIL, g.Grid, world.Right)
	require.NoError(t, err)
	lost := figure.New(w)
	g.Figure = lost

	for i := 0; i < 2*g.Grid.Size() && g.Figure == lost; i++ {
		require.NoError(t, Advance(g))
	}
	assert.NotSame(t, lost, g.Figure)
	assert.False(t, g.Over)
	assert.Zero(t, g.Settled)
	assert.Empty(t, g.Grid.BlockedCells())
}

func TestDrop_SettlesAtFreezeLine(t *testing.T) {
	g := newRunningGame(t)

	require.NoError(t, Drop(g))

	want := []world.Pos{{X: 16, Y: 21}, {X: 16, Y: 22}, {X: 16, Y: 23}, {X: 16, Y: 24}}
	assert.Equal(t, want, frozenPositions(g.Grid))
	assert.Empty(t, g.Grid.BlockedCells())
	assert.Equal(t, 1, g.Settled)
	assert.Equal(t, g.Config.PointsPerFigure, g.Score)
	assert.Equal(t, state.FlashTicks, g.ScoreFlash)

	require.NotNil(t, g.Figure, "next figure spawned")
	assert.False(t, g.Figure.OnGrid())
}

func TestDrop_ClearsAndScores(t *testing.T) {
	g := newRunningGame(t, func(c *config.Config) { c.ClearLength = 4 })

	require.NoError(t, Drop(g))

	assert.Empty(t, g.Grid.FrozenCells())
	assert.Equal(t, 4, g.Cleared)
	assert.Equal(t, 4*g.Config.PointsPerCell+g.Config.PointsPerFigure, g.Score)
	assert.Contains(t, g.Messages, "Cleared 4 cells")
}

func TestAdvance_BlockedOffGridEndsGame(t *testing.T) {
	g := newRunningGame(t)
	g.Grid.Cell(0, 21).Freeze()

	require.NoError(t, Drop(g))

	assert.True(t, g.Over)
	assert.Zero(t, g.Settled)
	assert.Contains(t, g.Messages, "Game over")

	// Nothing moves once the game is over
	top := g.Figure.Window().TopLeft()
	require.NoError(t, Tick(g, Input{Move: world.Down}))
	assert.Equal(t, top, g.Figure.Window().TopLeft())

	TogglePause(g)
	assert.False(t, g.Paused)
}

func TestAdvance_BlockedOnGridSettles(t *testing.T) {
	g := newRunningGame(t)
	g.Grid.Cell(10, 21).Freeze()

	require.NoError(t, Drop(g))

	assert.False(t, g.Over)
	assert.Equal(t, 1, g.Settled)
	assert.Contains(t, frozenPositions(g.Grid), world.Pos{X: 9, Y: 21})
}

func TestReset(t *testing.T) {
	g := newRunningGame(t)
	require.NoError(t, Drop(g))
	require.NotZero(t, g.Score)

	require.NoError(t, Reset(g))
	assert.Zero(t, g.Score)
	assert.Zero(t, g.Settled)
	assert.True(t, g.Paused)
	assert.False(t, g.Over)
	assert.Empty(t, g.Grid.FrozenCells())
	assert.NotNil(t, g.Figure)
	assert.Equal(t, []string{"Game reset"}, g.Messages)
}

func TestProcessIntent(t *testing.T) {
	g := newRunningGame(t)

	in, err := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveUp})
	require.NoError(t, err)
	assert.Equal(t, Input{Move: world.Up}, in)

	in, err = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionRotateLeft})
	require.NoError(t, err)
	assert.Equal(t, Input{Rotate: world.Left}, in)

	_, err = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionPause})
	require.NoError(t, err)
	assert.True(t, g.Paused)

	_, err = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionToggleGuides})
	require.NoError(t, err)
	assert.True(t, g.ShowGuides)

	_, err = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit})
	assert.True(t, errors.Is(err, ErrQuit))
}

func TestStep_AppliesMoveThenTicks(t *testing.T) {
	g := newRunningGame(t)

	require.NoError(t, Step(g, engineinput.Intent{Action: engineinput.ActionMoveDown}))
	assert.Equal(t, world.Pos{X: -4, Y: 22}, g.Figure.Window().TopLeft())
	assert.Equal(t, 1, g.FrameCount)
}
