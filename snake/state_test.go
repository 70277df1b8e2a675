package snake

import (
	"errors"
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/events"
	"github.com/lixenwraith/gridsnake/input"
)

// captureSink records emitted events in order
type captureSink struct {
	events []events.GameEvent
}

func (c *captureSink) Emit(ev events.GameEvent) {
	c.events = append(c.events, ev)
}

func (c *captureSink) count(t events.EventType) int {
	n := 0
	for _, ev := range c.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newTestState(t *testing.T) (*State, *captureSink) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	sink := &captureSink{}
	s, err := New(cfg, sink)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, sink
}

func locs(s *State) []core.Location {
	out := make([]core.Location, 0, s.Len())
	for _, seg := range s.Segments() {
		out = append(out, seg.Loc)
	}
	return out
}

func TestNewInitialLayout(t *testing.T) {
	s, sink := newTestState(t)

	got := locs(s)
	want := []core.Location{{X: 8, Y: 8}, {X: 8, Y: 7}}
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if s.Direction != core.Up {
		t.Errorf("Direction = %v, want Up", s.Direction)
	}
	if n := sink.count(events.EventSegmentSpawned); n != 2 {
		t.Errorf("SegmentSpawned events = %d, want 2", n)
	}
	if len(s.Foods()) != 0 {
		t.Errorf("Foods() = %v, want none", s.Foods())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero grid", func(c *Config) { c.GridSize = 0 }, ErrInvalidGrid},
		{"inverted bounds", func(c *Config) { c.Bounds = Bounds{Min: 5, Max: 4} }, ErrInvalidBounds},
		{"head outside", func(c *Config) { c.HeadStart = core.Location{X: 20, Y: 8} }, ErrStartOutOfBounds},
		{"body outside", func(c *Config) { c.BodyStart = core.Location{X: 8, Y: -1} }, ErrStartOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveDirectionRejectsReversal(t *testing.T) {
	for _, current := range core.Directions {
		for _, pressed := range core.Directions {
			s, _ := newTestState(t)
			s.Direction = current

			changed := s.ResolveDirection(input.Keys{}.With(pressed))

			switch {
			case pressed == current.Opposite():
				if changed || s.Direction != current {
					t.Errorf("current %v, pressed %v: direction became %v, want unchanged", current, pressed, s.Direction)
				}
			case pressed == current:
				if changed || s.Direction != current {
					t.Errorf("current %v, pressed %v: reported change", current, pressed)
				}
			default:
				if !changed || s.Direction != pressed {
					t.Errorf("current %v, pressed %v: direction = %v, want %v", current, pressed, s.Direction, pressed)
				}
			}
		}
	}
}

func TestResolveDirectionNoKeysKeepsHeading(t *testing.T) {
	s, sink := newTestState(t)
	s.Direction = core.Left

	if s.ResolveDirection(input.Keys{}) {
		t.Error("ResolveDirection with no keys reported a change")
	}
	if s.Direction != core.Left {
		t.Errorf("Direction = %v, want Left", s.Direction)
	}
	if n := sink.count(events.EventDirectionChanged); n != 0 {
		t.Errorf("DirectionChanged events = %d, want 0", n)
	}
}

func TestResolveDirectionPriorityThenReversal(t *testing.T) {
	s, _ := newTestState(t)
	s.Direction = core.Up

	// Down outranks Right, so the reversal is what gets rejected
	s.ResolveDirection(input.Keys{Down: true, Right: true})
	if s.Direction != core.Up {
		t.Errorf("Direction = %v, want Up", s.Direction)
	}

	// Left outranks Down and Right
	s.ResolveDirection(input.Keys{Left: true, Down: true, Right: true})
	if s.Direction != core.Left {
		t.Errorf("Direction = %v, want Left", s.Direction)
	}
}

func TestResolveDirectionWithoutHead(t *testing.T) {
	var s State
	if s.ResolveDirection(input.Keys{Left: true}) {
		t.Error("ResolveDirection on empty state reported a change")
	}
}
