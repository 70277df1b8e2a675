package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/events"
	"github.com/lixenwraith/gridsnake/status"
)

// StatusSystem mirrors simulation notifications into the status registry
type StatusSystem struct {
	statLength  *atomic.Int64
	statEaten   *atomic.Int64
	statSpawned *atomic.Int64
	statActive  *atomic.Int64
	statGrowths *atomic.Int64
	statTurns   *atomic.Int64
	statTicks   *atomic.Int64
}

func NewStatusSystem(w *World) *StatusSystem {
	reg := w.Status
	s := &StatusSystem{
		statLength:  reg.Ints.Get(status.KeySnakeLength),
		statEaten:   reg.Ints.Get(status.KeyFoodEaten),
		statSpawned: reg.Ints.Get(status.KeyFoodSpawned),
		statActive:  reg.Ints.Get(status.KeyFoodActive),
		statGrowths: reg.Ints.Get(status.KeySnakeGrowths),
		statTurns:   reg.Ints.Get(status.KeyTurns),
		statTicks:   reg.Ints.Get(status.KeyEngineTicks),
	}
	s.statLength.Store(int64(w.Snake.Len()))
	s.statActive.Store(int64(len(w.Snake.Foods())))
	return s
}

func (s *StatusSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodSpawned,
		events.EventFoodEaten,
		events.EventSnakeGrew,
		events.EventDirectionChanged,
		events.EventTick,
	}
}

func (s *StatusSystem) HandleEvent(_ *World, ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodSpawned:
		s.statSpawned.Add(1)
		s.statActive.Add(1)
	case events.EventFoodEaten:
		s.statEaten.Add(1)
		s.statActive.Add(-1)
	case events.EventSnakeGrew:
		s.statGrowths.Add(1)
		if p, ok := ev.Payload.(events.SegmentPayload); ok {
			s.statLength.Store(int64(p.Index + 1))
		}
	case events.EventDirectionChanged:
		s.statTurns.Add(1)
	case events.EventTick:
		s.statTicks.Add(1)
		if p, ok := ev.Payload.(events.TickPayload); ok {
			s.statLength.Store(int64(p.Length))
		}
	}
}
