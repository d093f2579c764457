package world

// DefaultSize is the side length of the reference board
const DefaultSize = 34

// Grid is a fixed square board with exactly one Cell per coordinate
type Grid struct {
	cells [][]*Cell // indexed [x][y]
	size  int
}

// NewGrid creates a new grid with the given side length, all cells clear
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Build initializes the grid with the given side length
func (g *Grid) Build(size int) {
	if size <= 0 || size%2 != 0 {
		panic("Grid size must be positive and even")
	}

	g.size = size
	g.cells = make([][]*Cell, size)

	half := size / 2
	for x := 0; x < size; x++ {
		g.cells[x] = make([]*Cell, size)
		for y := 0; y < size; y++ {
			g.cells[x][y] = NewCell(x, y, placeOf(x, y, half))
		}
	}
}

func placeOf(x, y, half int) Place {
	switch {
	case x < half && y < half:
		return TopLeft
	case y < half:
		return TopRight
	case x < half:
		return BottomLeft
	default:
		return BottomRight
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Half returns the index of the first column/row past the centre divide
func (g *Grid) Half() int {
	return g.size / 2
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Cell returns the cell at the given position, or nil if out of bounds
func (g *Grid) Cell(x, y int) *Cell {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return g.cells[x][y]
}

// CellAt returns the cell at p, or nil if out of bounds
func (g *Grid) CellAt(p Pos) *Cell {
	return g.Cell(p.X, p.Y)
}

// ForEachCell iterates over all cells in row-major order (rows outer, columns inner)
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			fn(g.cells[x][y])
		}
	}
}

// CellsWithState returns a snapshot of every cell in the given state, row-major
func (g *Grid) CellsWithState(state CellState) []*Cell {
	var result []*Cell
	g.ForEachCell(func(cell *Cell) {
		if cell.State == state {
			result = append(result, cell)
		}
	})
	return result
}

// BlockedCells returns all provisionally occupied cells
func (g *Grid) BlockedCells() []*Cell {
	return g.CellsWithState(Blocked)
}

// FrozenCells returns all settled cells
func (g *Grid) FrozenCells() []*Cell {
	return g.CellsWithState(Frozen)
}

// CountState returns the number of cells in the given state
func (g *Grid) CountState(state CellState) int {
	n := 0
	g.ForEachCell(func(cell *Cell) {
		if cell.State == state {
			n++
		}
	})
	return n
}

// ClearBlocked clears every provisionally occupied cell
func (g *Grid) ClearBlocked() {
	for _, cell := range g.BlockedCells() {
		cell.Clear()
	}
}

// FreezeBlocked promotes every provisionally occupied cell to frozen
func (g *Grid) FreezeBlocked() {
	for _, cell := range g.BlockedCells() {
		cell.Freeze()
	}
}
