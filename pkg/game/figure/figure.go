package figure

import (
	"kektris/pkg/engine/world"
)

// Figure is the piece currently in play. It owns its active window and
// replaces it wholesale on every accepted move or rotation.
type Figure struct {
	window *Window
	shape  Shape
}

// New creates a figure around an already built window
func New(w *Window) *Figure {
	return &Figure{window: w, shape: w.orientation.Shape}
}

// Spawn builds the arrival window for an orientation at origin and wraps it in
// a figure. The travel direction is derived from the arrival band.
func Spawn(origin world.Pos, o Orientation, grid *world.Grid) (*Figure, error) {
	w, err := NewWindow(origin, o, grid, world.None)
	if err != nil {
		return nil, err
	}
	return New(w), nil
}

// Window returns the active window
func (f *Figure) Window() *Window {
	return f.window
}

// Shape returns the figure's shape
func (f *Figure) Shape() Shape {
	return f.shape
}

// Orientation returns the current orientation
func (f *Figure) Orientation() Orientation {
	return f.window.orientation
}

// Travel returns the direction the figure moves across the board
func (f *Figure) Travel() world.Direction {
	return f.window.travel
}

// Rotatable reports whether the figure has distinguishable rotations
func (f *Figure) Rotatable() bool {
	return f.shape.HasRotations()
}

// ProposeMove returns the window one step in dir, or nil when dir reverses the
// travel direction (or is not a direction at all).
func (f *Figure) ProposeMove(dir world.Direction) *Window {
	if !dir.IsValid() || dir == f.window.travel.Opposite() {
		return nil
	}
	return f.window.Shifted(dir)
}

// ProposeRotate returns the window with the orientation rotated once in dir.
// Left turns counter-clockwise, Right clockwise.
func (f *Figure) ProposeRotate(dir world.Direction) (*Window, error) {
	next, err := f.window.orientation.Next(dir)
	if err != nil {
		return nil, err
	}
	return f.window.Rotated(next), nil
}

// IsValid reports whether a candidate window may be committed.
// A nil candidate is never valid.
func (f *Figure) IsValid(w *Window) bool {
	return w != nil && !w.HasFrozenNeighbor()
}

// Commit occupies the window's cells provisionally and makes it the active
// window. The caller must have checked IsValid first.
func (f *Figure) Commit(w *Window) {
	w.grid.ClearBlocked()
	for _, cell := range w.mapped {
		cell.Block()
	}
	f.window = w
}

// TryMove proposes, validates and commits a move in one step
func (f *Figure) TryMove(dir world.Direction) bool {
	w := f.ProposeMove(dir)
	if !f.IsValid(w) {
		return false
	}
	f.Commit(w)
	return true
}

// TryRotate proposes, validates and commits a rotation in one step.
// Errors are contract violations (O shape, bad direction) and are returned as is.
func (f *Figure) TryRotate(dir world.Direction) (bool, error) {
	w, err := f.ProposeRotate(dir)
	if err != nil {
		return false, err
	}
	if !f.IsValid(w) {
		return false, nil
	}
	f.Commit(w)
	return true, nil
}

// Cells returns the provisionally occupied cells of the grid
func (f *Figure) Cells() []*world.Cell {
	return f.window.grid.BlockedCells()
}

// OnGrid reports whether any part of the figure occupies the grid
func (f *Figure) OnGrid() bool {
	return len(f.window.mapped) > 0
}

// IsReadyToSettle reports whether a provisional cell has reached the freeze
// line on the near side of the centre divide.
func (f *Figure) IsReadyToSettle() bool {
	zones := ZonesFor(f.window.grid.Size())
	for _, cell := range f.window.grid.BlockedCells() {
		if zones.InFreezeZone(f.window.travel, cell.Pos()) {
			return true
		}
	}
	return false
}

// Settle freezes the figure's provisional cells in place.
// The figure should be discarded afterwards.
func (f *Figure) Settle() {
	f.window.grid.FreezeBlocked()
}
