package gameplay

import (
	"log"

	"kektris/pkg/engine/world"
	"kektris/pkg/game/figure"
	"kektris/pkg/game/lineclear"
	"kektris/pkg/game/state"
)

// Input is the player input evaluated in one tick. Move wins over Rotate
// when both are set; world.None means no input.
type Input struct {
	Move   world.Direction
	Rotate world.Direction
}

// Tick evaluates one frame: at most one player input, then, on cadence, one
// automatic advance in the figure's travel direction. Errors are contract
// violations and should stop the frontend.
func Tick(g *state.Game, in Input) error {
	if g.Paused || g.Over || g.Figure == nil {
		return nil
	}
	g.DecayFlashes()

	settled, err := applyInput(g, in)
	if err != nil || settled {
		return err
	}

	g.FrameCount++
	if g.FrameCount < g.Cadence() {
		return nil
	}
	g.FrameCount = 0
	_, err = advance(g)
	return err
}

// applyInput commits the input if the grid allows it and settles the figure
// when the move carried it onto its freeze line.
func applyInput(g *state.Game, in Input) (bool, error) {
	f := g.Figure
	var w *figure.Window
	switch {
	case in.Move.IsValid():
		w = f.ProposeMove(in.Move)
	case in.Rotate != world.None && f.Rotatable():
		var err error
		if w, err = f.ProposeRotate(in.Rotate); err != nil {
			return false, err
		}
	default:
		return false, nil
	}
	if !f.IsValid(w) || !inLanes(w) {
		return false, nil
	}
	f.Commit(w)

	if f.IsReadyToSettle() {
		return true, Settle(g)
	}
	return false, nil
}

// inLanes reports whether every cell of the window's shape lies within the
// board across the travel axis. Player input may not push a figure past the
// side edges, where it could never reach its freeze line.
func inLanes(w *figure.Window) bool {
	size := w.Grid().Size()
	acrossRows := w.Travel().Horizontal()
	tl := w.TopLeft()
	mask := w.Orientation().Mask()
	for row := 0; row < figure.WindowSize; row++ {
		for col := 0; col < figure.WindowSize; col++ {
			if !mask[row][col] {
				continue
			}
			lane := tl.X + col
			if acrossRows {
				lane = tl.Y + row
			}
			if lane < 0 || lane >= size {
				return false
			}
		}
	}
	return true
}

// pastBoard reports whether the window lies wholly beyond the far edge for
// its travel direction
func pastBoard(w *figure.Window) bool {
	size := w.Grid().Size()
	tl := w.TopLeft()
	switch w.Travel() {
	case world.Right:
		return tl.X >= size
	case world.Left:
		return tl.X <= -figure.WindowSize
	case world.Down:
		return tl.Y >= size
	case world.Up:
		return tl.Y <= -figure.WindowSize
	default:
		return false
	}
}

// Advance moves the figure one step in its travel direction, settling it when
// it reaches its freeze line or cannot move any further.
func Advance(g *state.Game) error {
	if g.Over || g.Figure == nil {
		return nil
	}
	_, err := advance(g)
	return err
}

func advance(g *state.Game) (bool, error) {
	f := g.Figure
	w := f.ProposeMove(f.Travel())
	if f.IsValid(w) {
		f.Commit(w)
		if f.IsReadyToSettle() {
			return true, Settle(g)
		}
		if pastBoard(w) {
			log.Printf("figure %v crossed the board without landing", w)
			g.Grid.ClearBlocked()
			return true, Spawn(g)
		}
		return false, nil
	}

	// Blocked before any part reached the board: nowhere left to land.
	if !f.OnGrid() {
		gameOver(g)
		return true, nil
	}
	return true, Settle(g)
}

// Drop advances the figure until it settles
func Drop(g *state.Game) error {
	if g.Paused || g.Over || g.Figure == nil {
		return nil
	}
	// A figure crosses at most the board plus its spawn band before settling.
	for i := 0; i < 2*g.Grid.Size(); i++ {
		settled, err := advance(g)
		if err != nil || settled {
			return err
		}
	}
	return Settle(g)
}

// Settle freezes the figure in place, runs the line-clear engine in the
// figure's travel direction, scores the result and spawns the next figure.
func Settle(g *state.Game) error {
	f := g.Figure
	travel := f.Travel()
	f.Settle()
	g.Settled++

	res := lineclear.New(g.Config.ClearLength).Run(g.Grid, travel)
	g.Cleared += res.Cleared

	speed := g.Speed
	g.AddScore(res.Cleared*g.Config.PointsPerCell + g.Config.PointsPerFigure)
	if res.Cleared > 0 {
		logMessage(g, "Cleared %d cells", res.Cleared)
	}
	if g.Speed != speed {
		logMessage(g, "Speed %d", g.Speed)
	}

	return Spawn(g)
}

func gameOver(g *state.Game) {
	g.Over = true
	g.Grid.ClearBlocked()
	log.Printf("game over: score %d, %d figures, %d cells cleared", g.Score, g.Settled, g.Cleared)
	logMessage(g, "Game over")
}
