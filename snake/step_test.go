package snake

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/events"
	"github.com/lixenwraith/gridsnake/input"
)

func TestTickScenarioMoveUp(t *testing.T) {
	s, _ := newTestState(t)

	s.Tick()

	got := locs(s)
	if got[0] != (core.Location{X: 8, Y: 9}) || got[1] != (core.Location{X: 8, Y: 8}) {
		t.Errorf("after tick segments = %v, want [(8,9) (8,8)]", got)
	}
	if s.TailEnd() != (core.Location{X: 8, Y: 7}) {
		t.Errorf("TailEnd() = %+v, want (8,7)", s.TailEnd())
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", s.Ticks())
	}
}

func TestMoveChainFollowsPreTickSnapshot(t *testing.T) {
	s, _ := newTestState(t)
	// Build a longer bent chain: head (8,8), then (8,7), (7,7), (6,7)
	s.appendSegment(core.Location{X: 7, Y: 7})
	s.appendSegment(core.Location{X: 6, Y: 7})

	for _, d := range []core.Direction{core.Left, core.Down, core.Right, core.Up} {
		if d == s.Direction.Opposite() {
			continue
		}
		s.Direction = d
		before := locs(s)

		s.Move()

		after := locs(s)
		dx, dy := d.Delta()
		if want := before[0].Add(dx, dy); after[0] != want {
			t.Errorf("%v: head = %+v, want %+v", d, after[0], want)
		}
		for i := 1; i < len(after); i++ {
			if after[i] != before[i-1] {
				t.Errorf("%v: segment[%d] = %+v, want predecessor's old %+v", d, i, after[i], before[i-1])
			}
		}
		if s.TailEnd() != before[len(before)-1] {
			t.Errorf("%v: TailEnd() = %+v, want %+v", d, s.TailEnd(), before[len(before)-1])
		}
	}
}

func TestMoveClampsMovingAxisOnly(t *testing.T) {
	tests := []struct {
		name  string
		dir   core.Direction
		start core.Location
		want  core.Location
	}{
		{"top edge", core.Up, core.Location{X: 3, Y: 15}, core.Location{X: 3, Y: 15}},
		{"reaches max", core.Up, core.Location{X: 3, Y: 14}, core.Location{X: 3, Y: 15}},
		{"bottom edge", core.Down, core.Location{X: 3, Y: 0}, core.Location{X: 3, Y: 0}},
		{"left edge", core.Left, core.Location{X: 0, Y: 5}, core.Location{X: 0, Y: 5}},
		{"right edge", core.Right, core.Location{X: 15, Y: 5}, core.Location{X: 15, Y: 5}},
		// Off-axis coordinate outside the bounds is left alone
		{"off axis untouched", core.Right, core.Location{X: 2, Y: 20}, core.Location{X: 3, Y: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t)
			s.segments[0].Loc = tt.start
			s.Direction = tt.dir

			s.Move()

			if got := s.segments[0].Loc; got != tt.want {
				t.Errorf("head = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMoveClampUsesConfiguredBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds = Bounds{Min: 0, Max: cfg.GridSize - 1}
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.segments[0].Loc = core.Location{X: 8, Y: 14}

	s.Move()

	if got := s.segments[0].Loc.Y; got != 14 {
		t.Errorf("head y = %d, want 14 with max bound 14", got)
	}
}

func TestClampedHeadStacksBody(t *testing.T) {
	s, _ := newTestState(t)
	s.segments[0].Loc = core.Location{X: 8, Y: 15}
	s.segments[1].Loc = core.Location{X: 8, Y: 14}

	s.Move()

	got := locs(s)
	// The head is pinned and the body walks into the head's cell
	if got[0] != (core.Location{X: 8, Y: 15}) || got[1] != (core.Location{X: 8, Y: 15}) {
		t.Errorf("segments = %v, want both at (8,15)", got)
	}
}

func TestMoveWithoutHeadIsNoop(t *testing.T) {
	var s State
	s.Move()
	if s.Tick() != (TickResult{}) {
		t.Error("Tick on empty state did work")
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, want 0", s.Ticks())
	}
}

func TestSpawnFoodWithinGrid(t *testing.T) {
	s, sink := newTestState(t)

	for i := 0; i < 500; i++ {
		f := s.SpawnFood()
		if f.Loc.X < 0 || f.Loc.X >= s.cfg.GridSize || f.Loc.Y < 0 || f.Loc.Y >= s.cfg.GridSize {
			t.Fatalf("food %d at %+v outside [0, %d)", i, f.Loc, s.cfg.GridSize)
		}
	}
	if len(s.Foods()) != 500 {
		t.Errorf("Foods() = %d, want 500; spawning never checks existing food", len(s.Foods()))
	}
	if n := sink.count(events.EventFoodSpawned); n != 500 {
		t.Errorf("FoodSpawned events = %d, want 500", n)
	}
}

func TestSpawnFoodDeterministicWithSeed(t *testing.T) {
	a, _ := newTestState(t)
	b, _ := newTestState(t)
	for i := 0; i < 20; i++ {
		if fa, fb := a.SpawnFood(), b.SpawnFood(); fa.Loc != fb.Loc {
			t.Fatalf("spawn %d diverged: %+v vs %+v", i, fa.Loc, fb.Loc)
		}
	}
}

func TestEatRemovesFoodUnderHead(t *testing.T) {
	s, sink := newTestState(t)
	s.foods = []Food{
		{ID: 100, Loc: core.Location{X: 8, Y: 8}},
		{ID: 101, Loc: core.Location{X: 1, Y: 1}},
	}

	if n := s.Eat(); n != 1 {
		t.Errorf("Eat() = %d, want 1", n)
	}
	foods := s.Foods()
	if len(foods) != 1 || foods[0].ID != 101 {
		t.Errorf("Foods() = %+v, want only ID 101", foods)
	}
	if s.GrowPending() != 1 {
		t.Errorf("GrowPending() = %d, want 1", s.GrowPending())
	}
	if n := sink.count(events.EventFoodEaten); n != 1 {
		t.Errorf("FoodEaten events = %d, want 1", n)
	}
}

func TestEatMultipleFoodsSameCellGrowsOnce(t *testing.T) {
	s, _ := newTestState(t)
	s.foods = []Food{
		{ID: 100, Loc: core.Location{X: 8, Y: 9}},
		{ID: 101, Loc: core.Location{X: 8, Y: 9}},
	}

	res := s.Tick()

	if res.Eaten != 2 {
		t.Errorf("Eaten = %d, want 2", res.Eaten)
	}
	if !res.Grew || s.Len() != 3 {
		t.Errorf("Grew = %v, Len() = %d, want one new segment", res.Grew, s.Len())
	}
	if s.GrowPending() != 0 {
		t.Errorf("GrowPending() = %d, want surplus dropped", s.GrowPending())
	}

	// The next tick without food must not grow again
	if res := s.Tick(); res.Grew {
		t.Error("second tick grew from a dropped surplus event")
	}
}

func TestGrowWithoutPendingIsNoop(t *testing.T) {
	s, sink := newTestState(t)
	if s.Grow() {
		t.Error("Grow() appended without a pending event")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if n := sink.count(events.EventSnakeGrew); n != 0 {
		t.Errorf("SnakeGrew events = %d, want 0", n)
	}
}

func TestTickScenarioEatAndGrow(t *testing.T) {
	s, sink := newTestState(t)
	s.foods = []Food{{ID: 100, Loc: core.Location{X: 8, Y: 9}}}

	res := s.Tick()

	if res.Eaten != 1 || !res.Grew {
		t.Fatalf("Tick() = %+v, want one eaten and growth", res)
	}
	want := []core.Location{{X: 8, Y: 9}, {X: 8, Y: 8}, {X: 8, Y: 7}}
	got := locs(s)
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(s.Foods()) != 0 {
		t.Errorf("Foods() = %v, want eaten food removed", s.Foods())
	}

	// New tail sits where the old tail was, then follows the chain
	s.Tick()
	got = locs(s)
	want = []core.Location{{X: 8, Y: 10}, {X: 8, Y: 9}, {X: 8, Y: 8}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("next tick segment[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	order := []events.EventType{}
	for _, ev := range sink.events {
		if ev.Tick == 1 {
			order = append(order, ev.Type)
		}
	}
	wantOrder := []events.EventType{
		events.EventFoodEaten,
		events.EventSegmentSpawned,
		events.EventSnakeGrew,
		events.EventTick,
	}
	if len(order) != len(wantOrder) {
		t.Fatalf("tick 1 events = %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("tick 1 event[%d] = %v, want %v", i, order[i], wantOrder[i])
		}
	}
}

func TestReversalRejectedBeforeTick(t *testing.T) {
	s, _ := newTestState(t)

	s.ResolveDirection(input.Keys{Down: true})
	s.Tick()

	if s.Direction != core.Up {
		t.Errorf("Direction = %v, want Up", s.Direction)
	}
	if head, _ := s.Head(); head.Loc != (core.Location{X: 8, Y: 9}) {
		t.Errorf("head = %+v, want (8,9)", head.Loc)
	}
}

func TestGrowthPreservesLocationInvariant(t *testing.T) {
	s, _ := newTestState(t)
	ids := map[uint64]bool{}

	for i := 0; i < 10; i++ {
		head, _ := s.Head()
		dx, dy := s.Direction.Delta()
		s.foods = append(s.foods, Food{ID: uint64(1000 + i), Loc: core.Location{X: head.Loc.X + dx, Y: s.cfg.Bounds.Clamp(head.Loc.Y + dy)}})
		s.Tick()
	}

	if s.Len() != 12 {
		t.Errorf("Len() = %d, want 12", s.Len())
	}
	for _, seg := range s.Segments() {
		if ids[seg.ID] {
			t.Errorf("duplicate segment ID %d", seg.ID)
		}
		ids[seg.ID] = true
	}
}
