package snake

import (
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/events"
	"github.com/lixenwraith/gridsnake/input"
)

// ResolveDirection applies the highest priority held key unless it reverses the head
// Runs once per frame, before any movement tick of that frame
func (s *State) ResolveDirection(keys input.Keys) bool {
	if len(s.segments) == 0 {
		return false
	}

	candidate, ok := keys.Candidate()
	if !ok || candidate == s.Direction || candidate == s.Direction.Opposite() {
		return false
	}

	prev := s.Direction
	s.Direction = candidate
	s.emit(events.EventDirectionChanged, events.DirectionPayload{From: prev, To: candidate})
	return true
}

// Move advances the head one cell and drags every other segment into its predecessor's old cell
func (s *State) Move() {
	n := len(s.segments)
	if n == 0 {
		return
	}

	locs := make([]core.Location, n)
	for i, seg := range s.segments {
		locs[i] = seg.Loc
	}
	s.tailEnd = locs[n-1]

	dx, dy := s.Direction.Delta()
	head := locs[0].Add(dx, dy)
	// Only the moving axis is clamped
	if s.Direction.Horizontal() {
		head.X = s.cfg.Bounds.Clamp(head.X)
	} else {
		head.Y = s.cfg.Bounds.Clamp(head.Y)
	}
	s.segments[0].Loc = head

	for i := 1; i < n; i++ {
		s.segments[i].Loc = locs[i-1]
	}
}

// SpawnFood places a new food at a uniform random cell of [0, GridSize)
// No check against the body or existing food is made
func (s *State) SpawnFood() Food {
	f := Food{
		ID: s.newID(),
		Loc: core.Location{
			X: s.rng.IntN(s.cfg.GridSize),
			Y: s.rng.IntN(s.cfg.GridSize),
		},
	}
	s.foods = append(s.foods, f)
	s.emit(events.EventFoodSpawned, events.FoodPayload{ID: f.ID, Loc: f.Loc})
	return f
}

// Eat removes every food under the head, queueing one growth per food
func (s *State) Eat() int {
	head, ok := s.Head()
	if !ok {
		return 0
	}

	eaten := 0
	kept := s.foods[:0]
	for _, f := range s.foods {
		if f.Loc == head.Loc {
			eaten++
			s.emit(events.EventFoodEaten, events.FoodPayload{ID: f.ID, Loc: f.Loc})
			continue
		}
		kept = append(kept, f)
	}
	s.foods = kept
	s.growPending += eaten

	return eaten
}

// Grow appends at most one segment at the recorded tail end and clears pending growth
func (s *State) Grow() bool {
	if s.growPending == 0 || len(s.segments) == 0 {
		return false
	}
	s.growPending = 0

	seg := s.appendSegment(s.tailEnd)
	s.emit(events.EventSnakeGrew, events.SegmentPayload{ID: seg.ID, Loc: seg.Loc, Index: len(s.segments) - 1})
	return true
}

// TickResult summarizes one movement tick
type TickResult struct {
	Eaten int
	Grew  bool
}

// Tick runs one movement tick: Move, then Eat, then Grow
// Grow reads the tail end recorded by this tick's Move
func (s *State) Tick() TickResult {
	if len(s.segments) == 0 {
		return TickResult{}
	}

	s.ticks++
	s.Move()
	res := TickResult{Eaten: s.Eat()}
	res.Grew = s.Grow()

	s.emit(events.EventTick, events.TickPayload{
		Head:   s.segments[0].Loc,
		Length: len(s.segments),
		Eaten:  res.Eaten,
		Grew:   res.Grew,
	})
	return res
}
