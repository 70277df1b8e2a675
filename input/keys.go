package input

import "github.com/lixenwraith/gridsnake/core"

// Keys is the set of movement keys held during the current frame
type Keys struct {
	Up, Left, Down, Right bool
}

// Source supplies one Keys snapshot per frame
type Source interface {
	Keys() Keys
}

// Held reports whether the key for d is down
func (k Keys) Held(d core.Direction) bool {
	switch d {
	case core.Up:
		return k.Up
	case core.Left:
		return k.Left
	case core.Down:
		return k.Down
	case core.Right:
		return k.Right
	default:
		return false
	}
}

// Candidate returns the first held direction in priority order Up, Left, Down, Right
func (k Keys) Candidate() (core.Direction, bool) {
	for _, d := range core.Directions {
		if k.Held(d) {
			return d, true
		}
	}
	return 0, false
}

// With returns a copy of k with the key for d held
func (k Keys) With(d core.Direction) Keys {
	switch d {
	case core.Up:
		k.Up = true
	case core.Left:
		k.Left = true
	case core.Down:
		k.Down = true
	case core.Right:
		k.Right = true
	}
	return k
}

// SourceFunc adapts a plain function to Source
type SourceFunc func() Keys

func (f SourceFunc) Keys() Keys {
	return f()
}
