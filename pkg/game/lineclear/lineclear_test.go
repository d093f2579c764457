package lineclear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kektris/pkg/engine/world"
)

func seq(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func freezeRow(grid *world.Grid, y int, xs []int) {
	for _, x := range xs {
		grid.Cell(x, y).Freeze()
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want [][]int
	}{
		{"empty", nil, nil},
		{"single", []int{4}, [][]int{{4}}},
		{"one run", []int{1, 2, 3}, [][]int{{1, 2, 3}}},
		{"gap", []int{1, 2, 3, 4, 5, 6, 8, 9}, [][]int{{1, 2, 3, 4, 5, 6}, {8, 9}}},
		{"all apart", []int{1, 3, 5}, [][]int{{1}, {3}, {5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunks(tt.in))
		})
	}
}

func TestCheckLine_FullRun(t *testing.T) {
	e := New(6)
	line := seq(0, 16)
	assert.Equal(t, line, e.CheckLine(line))
}

func TestCheckLine_OnlyLongRunQualifies(t *testing.T) {
	e := New(6)
	line := append(seq(20, 22), seq(0, 11)...)
	assert.Equal(t, seq(0, 11), e.CheckLine(line))
}

func TestCheckLine_BelowThreshold(t *testing.T) {
	e := New(6)
	assert.Nil(t, e.CheckLine(seq(0, 4)))
	// enough cells in the line but no run long enough
	assert.Empty(t, e.CheckLine([]int{0, 1, 2, 4, 5, 6, 8, 9}))
}

func TestCheckLine_DoesNotReorderInput(t *testing.T) {
	e := New(2)
	in := []int{5, 4, 9}
	e.CheckLine(in)
	assert.Equal(t, []int{5, 4, 9}, in)
}

func TestScan_BothAxes(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	e := New(6)

	freezeRow(grid, 20, seq(0, 5))
	for y := 10; y < 16; y++ {
		grid.Cell(30, y).Freeze()
	}
	grid.Cell(0, 0).Freeze()

	found := e.Scan(grid)
	require.Len(t, found, 12)
	assert.Equal(t, world.Pos{X: 30, Y: 10}, found[0])
	assert.Equal(t, world.Pos{X: 5, Y: 20}, found[len(found)-1])
	assert.NotContains(t, found, world.Pos{X: 0, Y: 0})
}

func TestScan_CrossCountsOnce(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	e := New(5)
	freezeRow(grid, 8, seq(3, 7))
	for y := 6; y <= 10; y++ {
		grid.Cell(5, y).Freeze()
	}
	assert.Len(t, e.Scan(grid), 9)
}

func TestClear_ClearsRunsAndLeavesRest(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	e := New(6)
	freezeRow(grid, 3, seq(0, 11))
	freezeRow(grid, 3, seq(20, 22))

	cleared := e.Clear(grid)
	assert.Len(t, cleared, 12)
	for _, x := range seq(0, 11) {
		assert.True(t, grid.Cell(x, 3).IsClear(), "x=%d", x)
	}
	for _, x := range seq(20, 22) {
		assert.True(t, grid.Cell(x, 3).IsFrozen(), "x=%d", x)
	}
	assert.Empty(t, e.Clear(grid))
}

func TestClear_IgnoresBlocked(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	e := New(4)
	for _, x := range seq(0, 5) {
		grid.Cell(x, 0).Block()
	}
	assert.Empty(t, e.Clear(grid))
}

func TestNew_RejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { New(0) })
}
