package snake

import "github.com/lixenwraith/gridsnake/core"

// View is a read-only copy of the state handed to renderers
type View struct {
	Direction core.Direction
	Segments  []Segment
	Foods     []Food
	TailEnd   core.Location
	Ticks     uint64
	GridSize  int
	Bounds    Bounds
}

// View snapshots the current state
func (s *State) View() View {
	return View{
		Direction: s.Direction,
		Segments:  s.Segments(),
		Foods:     s.Foods(),
		TailEnd:   s.tailEnd,
		Ticks:     s.ticks,
		GridSize:  s.cfg.GridSize,
		Bounds:    s.cfg.Bounds,
	}
}

// Occupant classifies what a renderer should draw in a cell
type Occupant uint8

const (
	OccupantNone Occupant = iota
	OccupantFood
	OccupantBody
	OccupantHead
)

// At returns the topmost occupant of loc: head over body over food
func (v View) At(loc core.Location) Occupant {
	out := OccupantNone
	for _, f := range v.Foods {
		if f.Loc == loc {
			out = OccupantFood
			break
		}
	}
	for i, seg := range v.Segments {
		if seg.Loc != loc {
			continue
		}
		if i == 0 {
			return OccupantHead
		}
		out = OccupantBody
	}
	return out
}

// Extent returns the inclusive cell range on either axis that can hold an entity
// Food spawns in [0, GridSize) while the head may reach the clamp bounds
func (v View) Extent() (lo, hi int) {
	lo, hi = min(0, v.Bounds.Min), max(v.GridSize-1, v.Bounds.Max)
	return lo, hi
}
