package snake

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/events"
)

// Sink receives entity notifications; *events.EventQueue satisfies it
type Sink interface {
	Emit(events.GameEvent)
}

type nopSink struct{}

func (nopSink) Emit(events.GameEvent) {}

// Segment is one body part; its Location lives inline so every chain entry has one
type Segment struct {
	ID  uint64
	Loc core.Location
}

// Food is a single edible cell
type Food struct {
	ID  uint64
	Loc core.Location
}

// State owns the whole discrete simulation
// Not safe for concurrent use; the frame loop is the only writer
type State struct {
	cfg Config

	// Direction is the Head heading; segments[0] is the head
	Direction core.Direction

	segments []Segment // Ordered head -> tail
	tailEnd  core.Location
	foods    []Food

	// growPending counts eat events since the last growth step
	growPending int

	nextID uint64
	ticks  uint64
	rng    *rand.Rand
	sink   Sink
}

// New validates cfg and creates the head and one body segment
// A nil sink discards notifications
func New(cfg Config, sink Sink) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake config: %w", err)
	}
	if sink == nil {
		sink = nopSink{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &State{
		cfg:       cfg,
		Direction: cfg.Heading,
		segments:  make([]Segment, 0, 16),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sink:      sink,
	}
	s.appendSegment(cfg.HeadStart)
	s.appendSegment(cfg.BodyStart)
	s.tailEnd = cfg.BodyStart

	return s, nil
}

func (s *State) newID() uint64 {
	s.nextID++
	return s.nextID
}

func (s *State) emit(t events.EventType, payload any) {
	s.sink.Emit(events.GameEvent{Type: t, Payload: payload, Tick: s.ticks})
}

func (s *State) appendSegment(loc core.Location) Segment {
	seg := Segment{ID: s.newID(), Loc: loc}
	s.segments = append(s.segments, seg)
	s.emit(events.EventSegmentSpawned, events.SegmentPayload{ID: seg.ID, Loc: loc, Index: len(s.segments) - 1})
	return seg
}

// Head returns the head segment, false when the chain is empty
func (s *State) Head() (Segment, bool) {
	if len(s.segments) == 0 {
		return Segment{}, false
	}
	return s.segments[0], true
}

// Segments returns a copy of the chain, head first
func (s *State) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Foods returns a copy of the live food entities
func (s *State) Foods() []Food {
	out := make([]Food, len(s.foods))
	copy(out, s.foods)
	return out
}

// Len returns the number of segments, head included
func (s *State) Len() int {
	return len(s.segments)
}

// TailEnd returns the tail location recorded by the last movement step
func (s *State) TailEnd() core.Location {
	return s.tailEnd
}

// GrowPending returns the number of eat events not yet consumed by Grow
func (s *State) GrowPending() int {
	return s.growPending
}

// Ticks returns the number of completed movement ticks
func (s *State) Ticks() uint64 {
	return s.ticks
}
