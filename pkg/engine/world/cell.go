// Package world provides the square board primitives: positions, cells and the grid.
// It knows nothing about figures, rendering or input.
package world

import "fmt"

// Pos is an integer board coordinate. X is the column, Y the row.
// Positions outside the grid are legal values; only the grid decides membership.
type Pos struct {
	X int
	Y int
}

// Add returns the position shifted by dx, dy
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position in the given direction
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CellState is the lifecycle state of a cell
type CellState int

const (
	Clear   CellState = iota // Nothing occupies the cell
	Blocked                  // Provisionally occupied by the moving figure
	Frozen                   // Permanently settled
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Clear:
		return "Clear"
	case Blocked:
		return "Blocked"
	case Frozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}

// Place is the board quadrant a cell belongs to
type Place int

const (
	TopLeft Place = iota
	TopRight
	BottomLeft
	BottomRight
)

// IsLeft reports whether the quadrant lies left of the vertical divide
func (p Place) IsLeft() bool {
	return p == TopLeft || p == BottomLeft
}

// IsTop reports whether the quadrant lies above the horizontal divide
func (p Place) IsTop() bool {
	return p == TopLeft || p == TopRight
}

// Cell represents a single addressable grid position.
// Its coordinates are fixed at creation; only the state changes.
type Cell struct {
	x     int
	y     int
	place Place

	State CellState
}

// NewCell creates a new clear cell at the given position
func NewCell(x, y int, place Place) *Cell {
	return &Cell{x: x, y: y, place: place}
}

// X returns the cell column
func (c *Cell) X() int { return c.x }

// Y returns the cell row
func (c *Cell) Y() int { return c.y }

// Pos returns the cell position
func (c *Cell) Pos() Pos {
	return Pos{X: c.x, Y: c.y}
}

// Place returns the quadrant of the cell
func (c *Cell) Place() Place {
	return c.place
}

// Equal compares cells by position only, regardless of state
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.x == other.x && c.y == other.y
}

// IsClear returns true if nothing occupies the cell
func (c *Cell) IsClear() bool {
	return c.State == Clear
}

// IsBlocked returns true if the moving figure occupies the cell
func (c *Cell) IsBlocked() bool {
	return c.State == Blocked
}

// IsFrozen returns true if the cell is permanently settled
func (c *Cell) IsFrozen() bool {
	return c.State == Frozen
}

// Freeze settles the cell
func (c *Cell) Freeze() {
	c.State = Frozen
}

// Clear empties the cell
func (c *Cell) Clear() {
	c.State = Clear
}

// Block marks the cell as provisionally occupied
func (c *Cell) Block() {
	c.State = Blocked
}
