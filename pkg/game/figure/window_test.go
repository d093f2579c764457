package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kektris/pkg/engine/world"
)

var orientationIL = Orientation{Shape: ShapeI, Rotation: RotL}

func TestNewWindow_DerivesTravelFromBand(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	n := grid.Size()

	tests := []struct {
		name   string
		origin world.Pos
		want   world.Direction
	}{
		{"left band first row", world.Pos{X: -4, Y: 0}, world.Right},
		{"left band", world.Pos{X: -4, Y: 21}, world.Right},
		{"left band last row", world.Pos{X: -4, Y: n - 4}, world.Right},
		{"right band", world.Pos{X: n, Y: 5}, world.Left},
		{"top band", world.Pos{X: 10, Y: -4}, world.Down},
		{"bottom band", world.Pos{X: 30, Y: n}, world.Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWindow(tt.origin, orientationIL, grid, world.None)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Travel())
			assert.Equal(t, tt.origin, w.TopLeft())
		})
	}
}

func TestNewWindow_InvalidSpawn(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	n := grid.Size()

	for _, origin := range []world.Pos{
		{X: 0, Y: 0},
		{X: -4, Y: -4},
		{X: -4, Y: n - 3},
		{X: -3, Y: 10},
		{X: n + 1, Y: 10},
		{X: 10, Y: -5},
		{X: n, Y: n},
	} {
		_, err := NewWindow(origin, orientationIL, grid, world.None)
		assert.ErrorIs(t, err, ErrInvalidSpawn, "origin %v", origin)
	}
}

func TestNewWindow_ExplicitTravelSkipsBands(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	w, err := NewWindow(world.Pos{X: 7, Y: 7}, orientationIL, grid, world.Up)
	require.NoError(t, err)
	assert.Equal(t, world.Up, w.Travel())
}

func TestWindowedCells_PartiallyOffGrid(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	w, err := NewWindow(world.Pos{X: -1, Y: -1}, orientationIL, grid, world.Right)
	require.NoError(t, err)

	cells := w.WindowedCells()
	assert.Nil(t, cells[0][0])
	assert.Nil(t, cells[0][1])
	assert.Nil(t, cells[1][0])
	assert.Same(t, grid.Cell(0, 0), cells[1][1])
	assert.Same(t, grid.Cell(2, 2), cells[3][3])
}

func TestMappedCells_IL(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	w, err := NewWindow(world.Pos{X: 0, Y: 0}, orientationIL, grid, world.Right)
	require.NoError(t, err)

	mapped := w.MappedCells()
	require.Len(t, mapped, 4)
	for i, want := range []world.Pos{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}} {
		assert.Same(t, grid.CellAt(want), mapped[i], "mapped[%d]", i)
	}
}

func TestMappedCells_DropsOffGridBits(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)

	// I_L occupies column 1 of the window; at x=-2 that column is x=-1.
	w, err := NewWindow(world.Pos{X: -2, Y: 3}, orientationIL, grid, world.Right)
	require.NoError(t, err)
	assert.Empty(t, w.MappedCells())

	// I_U occupies row 2; only its two rightmost bits land at x=0,1.
	iu := Orientation{Shape: ShapeI, Rotation: RotU}
	w, err = NewWindow(world.Pos{X: -2, Y: 3}, iu, grid, world.Right)
	require.NoError(t, err)
	mapped := w.MappedCells()
	require.Len(t, mapped, 2)
	assert.Equal(t, world.Pos{X: 0, Y: 5}, mapped[0].Pos())
	assert.Equal(t, world.Pos{X: 1, Y: 5}, mapped[1].Pos())
}

func TestMappedCells_CountMatchesMaskForEveryOrientation(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	for _, s := range AllShapes() {
		for r := RotL; r <= RotD; r++ {
			o := Orientation{Shape: s, Rotation: r}
			w, err := NewWindow(world.Pos{X: 10, Y: 10}, o, grid, world.Down)
			require.NoError(t, err)
			assert.Equal(t, o.Mask().Count(), len(w.MappedCells()), "%v", o)
			assert.Equal(t, 4, o.Mask().Count(), "%v", o)
		}
	}
}

func TestHasFrozenNeighbor(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	w, err := NewWindow(world.Pos{X: 0, Y: 0}, orientationIL, grid, world.Right)
	require.NoError(t, err)
	assert.False(t, w.HasFrozenNeighbor())

	grid.Cell(1, 2).Block()
	assert.False(t, w.HasFrozenNeighbor(), "provisional cells do not block")

	grid.Cell(1, 2).Freeze()
	assert.True(t, w.HasFrozenNeighbor())
}

func TestWindow_ShiftedIsNewValue(t *testing.T) {
	grid := world.NewGrid(world.DefaultSize)
	w, err := NewWindow(world.Pos{X: -4, Y: 21}, orientationIL, grid, world.None)
	require.NoError(t, err)

	moved := w.Shifted(world.Right)
	assert.Equal(t, world.Pos{X: -4, Y: 21}, w.TopLeft())
	assert.Equal(t, world.Pos{X: -3, Y: 21}, moved.TopLeft())
	assert.Equal(t, w.Travel(), moved.Travel())
	assert.Equal(t, w.Orientation(), moved.Orientation())
}
