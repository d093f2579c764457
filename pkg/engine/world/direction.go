package world

// Direction represents an axis-aligned direction on the board
type Direction int

// Direction constants. The zero value means "no direction".
const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four axis directions
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction.
// Y grows downwards, so Up is -1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal returns true for Left and Right
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}
