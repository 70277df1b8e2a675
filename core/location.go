package core

// Location is a grid cell coordinate, copied by value
type Location struct {
	X, Y int
}

// Add returns the location offset by (dx, dy)
func (l Location) Add(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Direction is the heading of the snake head
type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists every heading in input priority order
var Directions = [...]Direction{Up, Left, Down, Right}

// Opposite returns the reverse heading; total over all four directions
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the one-cell step for the heading, y grows upward
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Horizontal reports whether the heading moves along the x axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
