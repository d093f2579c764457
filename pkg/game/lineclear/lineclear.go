// Package lineclear finds and clears long runs of settled cells and collapses
// the remaining settled cells toward the centre of the board.
package lineclear

import (
	"sort"

	"github.com/kamstrup/intmap"
	"github.com/zyedidia/generic/mapset"

	"kektris/pkg/engine/world"
)

// Engine clears runs of settled cells at least ClearLength long
type Engine struct {
	ClearLength int
}

// New creates an engine with the given clear-length threshold
func New(clearLength int) *Engine {
	if clearLength <= 0 {
		panic("clear length must be positive")
	}
	return &Engine{ClearLength: clearLength}
}

// Result summarizes one Run
type Result struct {
	Cleared int // cells cleared across all passes
	Moved   int // single-step collapse moves
	Passes  int // clear/collapse rounds that cleared something
}

// Chunks splits ascending coordinates into maximal runs of consecutive values
func Chunks(sorted []int) [][]int {
	var chunks [][]int
	var chunk []int
	for _, v := range sorted {
		if len(chunk) > 0 && v != chunk[len(chunk)-1]+1 {
			chunks = append(chunks, chunk)
			chunk = nil
		}
		chunk = append(chunk, v)
	}
	if len(chunk) > 0 {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// CheckLine takes the settled coordinates of one line and returns those that
// belong to a clearable run. A line with fewer settled cells than the
// threshold is skipped outright.
func (e *Engine) CheckLine(coords []int) []int {
	if len(coords) < e.ClearLength {
		return nil
	}

	sorted := make([]int, len(coords))
	copy(sorted, coords)
	sort.Ints(sorted)

	var result []int
	for _, chunk := range Chunks(sorted) {
		if len(chunk) >= e.ClearLength {
			result = append(result, chunk...)
		}
	}
	return result
}

// Scan returns every settled position that lies in a clearable run along
// either axis, evaluated on one snapshot of the grid, in row-major order.
func (e *Engine) Scan(grid *world.Grid) []world.Pos {
	size := grid.Size()
	rows := intmap.New[int, []int](size)
	cols := intmap.New[int, []int](size)

	for _, cell := range grid.FrozenCells() {
		xs, _ := rows.Get(cell.Y())
		rows.Put(cell.Y(), append(xs, cell.X()))
		ys, _ := cols.Get(cell.X())
		cols.Put(cell.X(), append(ys, cell.Y()))
	}

	found := mapset.New[world.Pos]()
	for i := 0; i < size; i++ {
		if xs, ok := rows.Get(i); ok {
			for _, x := range e.CheckLine(xs) {
				found.Put(world.Pos{X: x, Y: i})
			}
		}
		if ys, ok := cols.Get(i); ok {
			for _, y := range e.CheckLine(ys) {
				found.Put(world.Pos{X: i, Y: y})
			}
		}
	}

	if found.Size() == 0 {
		return nil
	}
	result := make([]world.Pos, 0, found.Size())
	found.Each(func(p world.Pos) {
		result = append(result, p)
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y != result[j].Y {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}

// Clear clears clearable runs until a scan finds nothing and returns the
// cleared positions in the order they were cleared.
func (e *Engine) Clear(grid *world.Grid) []world.Pos {
	var cleared []world.Pos
	for {
		found := e.Scan(grid)
		if len(found) == 0 {
			return cleared
		}
		for _, p := range found {
			grid.CellAt(p).Clear()
		}
		cleared = append(cleared, found...)
	}
}

// Run alternates clearing and collapsing toward the centre until the grid is
// stable. travel is the direction of the figure whose landing triggered it.
func (e *Engine) Run(grid *world.Grid, travel world.Direction) Result {
	var res Result
	for {
		cleared := e.Clear(grid)
		if len(cleared) == 0 {
			return res
		}
		res.Cleared += len(cleared)
		res.Passes++

		moved := Collapse(grid, travel, cleared)
		res.Moved += moved
		if moved == 0 {
			return res
		}
	}
}
