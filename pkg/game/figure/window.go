// Package figure implements the moving piece: its orientation table, the 4x4
// window that maps an orientation onto the board, and the figure that proposes,
// validates and commits moves.
package figure

import (
	"fmt"

	"kektris/pkg/engine/world"
)

// Window is a 4x4 view of the grid at a top-left origin combined with an
// orientation mask. A Window never changes once built; moving or rotating
// produces a new Window.
type Window struct {
	topLeft     world.Pos
	orientation Orientation
	grid        *world.Grid
	travel      world.Direction

	windowed [WindowSize][WindowSize]*world.Cell
	mapped   []*world.Cell
}

// NewWindow builds a window. When travel is world.None the direction is
// derived from the arrival band that contains topLeft; an origin outside every
// band is an ErrInvalidSpawn.
func NewWindow(topLeft world.Pos, o Orientation, grid *world.Grid, travel world.Direction) (*Window, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("figure: unknown orientation %d/%d", o.Shape, o.Rotation)
	}
	if travel == world.None {
		derived, ok := ZonesFor(grid.Size()).TravelFrom(topLeft)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSpawn, topLeft)
		}
		travel = derived
	}
	return newWindow(topLeft, o, grid, travel), nil
}

func newWindow(topLeft world.Pos, o Orientation, grid *world.Grid, travel world.Direction) *Window {
	w := &Window{
		topLeft:     topLeft,
		orientation: o,
		grid:        grid,
		travel:      travel,
	}

	for row := 0; row < WindowSize; row++ {
		for col := 0; col < WindowSize; col++ {
			// nil where the window hangs off the board
			w.windowed[row][col] = grid.Cell(topLeft.X+col, topLeft.Y+row)
		}
	}

	mask := o.Mask()
	for row := 0; row < WindowSize; row++ {
		for col := 0; col < WindowSize; col++ {
			if mask[row][col] && w.windowed[row][col] != nil {
				w.mapped = append(w.mapped, w.windowed[row][col])
			}
		}
	}
	return w
}

// TopLeft returns the window origin in grid coordinates
func (w *Window) TopLeft() world.Pos {
	return w.topLeft
}

// Orientation returns the orientation the window overlays
func (w *Window) Orientation() Orientation {
	return w.orientation
}

// Grid returns the grid the window views
func (w *Window) Grid() *world.Grid {
	return w.grid
}

// Travel returns the direction the figure moves across the board
func (w *Window) Travel() world.Direction {
	return w.travel
}

// WindowedCells returns the 4x4 cells under the window, [row][col], nil off-grid
func (w *Window) WindowedCells() [WindowSize][WindowSize]*world.Cell {
	return w.windowed
}

// MappedCells returns the on-grid cells selected by the mask, in mask row-major order
func (w *Window) MappedCells() []*world.Cell {
	out := make([]*world.Cell, len(w.mapped))
	copy(out, w.mapped)
	return out
}

// HasFrozenNeighbor returns true if any mapped cell is already settled
func (w *Window) HasFrozenNeighbor() bool {
	for _, cell := range w.mapped {
		if cell.IsFrozen() {
			return true
		}
	}
	return false
}

// Shifted returns a window moved one step in dir, keeping orientation and travel
func (w *Window) Shifted(dir world.Direction) *Window {
	return newWindow(w.topLeft.Step(dir), w.orientation, w.grid, w.travel)
}

// Rotated returns a window at the same origin with another orientation
func (w *Window) Rotated(o Orientation) *Window {
	return newWindow(w.topLeft, o, w.grid, w.travel)
}

func (w *Window) String() string {
	return fmt.Sprintf("%v@%v->%v", w.orientation, w.topLeft, w.travel)
}
