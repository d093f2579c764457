package figure

import (
	"fmt"

	"kektris/pkg/engine/world"
)

// WindowSize is the side length of the figure window
const WindowSize = 4

// Shape is a polyomino kind
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
	ShapeT
)

// ShapeCount is the number of distinct shapes
const ShapeCount = 7

// AllShapes returns every shape in table order
func AllShapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeJ, ShapeL, ShapeS, ShapeZ, ShapeT}
}

func (s Shape) String() string {
	if s < 0 || int(s) >= ShapeCount {
		return "?"
	}
	return "IOJLSZT"[s : s+1]
}

// HasRotations reports whether rotating the shape changes its footprint
func (s Shape) HasRotations() bool {
	return s != ShapeO
}

// Rotation is the rotational index of an orientation, 1..4 in clockwise order
type Rotation int

const (
	RotL Rotation = iota + 1
	RotU
	RotR
	RotD
)

func (r Rotation) String() string {
	switch r {
	case RotL:
		return "L"
	case RotU:
		return "U"
	case RotR:
		return "R"
	case RotD:
		return "D"
	default:
		return "?"
	}
}

// Mask marks the occupied cells of a 4x4 window, indexed [row][col]
type Mask [WindowSize][WindowSize]bool

// Count returns the number of occupied cells
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, bit := range row {
			if bit {
				n++
			}
		}
	}
	return n
}

// Orientation is a shape in one of its rotations
type Orientation struct {
	Shape    Shape
	Rotation Rotation
}

// String returns the table name of the orientation, e.g. "I_L"
func (o Orientation) String() string {
	return o.Shape.String() + "_" + o.Rotation.String()
}

// Valid reports whether the orientation indexes the mask table
func (o Orientation) Valid() bool {
	return o.Shape >= ShapeI && int(o.Shape) < ShapeCount && o.Rotation >= RotL && o.Rotation <= RotD
}

// Mask returns the occupancy mask of the orientation
func (o Orientation) Mask() Mask {
	return masks[o.Shape][o.Rotation-1]
}

// Next returns the orientation after one rotation step.
// Right turns clockwise, Left counter-clockwise, both wrapping around.
func (o Orientation) Next(dir world.Direction) (Orientation, error) {
	if !o.Shape.HasRotations() {
		return o, fmt.Errorf("%w: %v", ErrNoRotation, o)
	}

	next := o
	switch dir {
	case world.Right:
		next.Rotation = o.Rotation%4 + 1
	case world.Left:
		next.Rotation = (o.Rotation+2)%4 + 1
	default:
		return o, fmt.Errorf("%w: %v", ErrRotateDirection, dir)
	}
	return next, nil
}

// Occupied cells per orientation as (x, y) = (col, row) offsets inside the window.
// Order of clockwise rotation is L, U, R, D.
var footprints = [ShapeCount][4][4][2]int{
	ShapeI: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	ShapeO: {
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	ShapeJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{2, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	ShapeL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{2, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	ShapeS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	ShapeZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	ShapeT: {
		{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
	},
}

var masks [ShapeCount][4]Mask

func init() {
	for s := range footprints {
		for r := range footprints[s] {
			for _, xy := range footprints[s][r] {
				masks[s][r][xy[1]][xy[0]] = true
			}
		}
	}
}
