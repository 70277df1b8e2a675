package system

import (
	"log"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/gridsnake/events"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// JournalSystem writes a rate-limited event log for debugging sessions
// Events past the burst are counted and dropped rather than queued
type JournalSystem struct {
	logger  *log.Logger
	limiter *rate.Limiter

	statDropped *atomic.Int64
}

// NewJournalSystem logs to logger; nil uses the standard logger
func NewJournalSystem(w *World, logger *log.Logger) *JournalSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &JournalSystem{
		logger:      logger,
		limiter:     rate.NewLimiter(rate.Limit(parameter.JournalRate), parameter.JournalBurst),
		statDropped: w.Status.Ints.Get(status.KeyJournalDrops),
	}
}

func (s *JournalSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSegmentSpawned,
		events.EventFoodSpawned,
		events.EventFoodEaten,
		events.EventSnakeGrew,
		events.EventDirectionChanged,
		events.EventTick,
	}
}

func (s *JournalSystem) HandleEvent(_ *World, ev events.GameEvent) {
	if !s.limiter.Allow() {
		s.statDropped.Add(1)
		return
	}

	switch p := ev.Payload.(type) {
	case events.SegmentPayload:
		s.logger.Printf("[tick %d] %s id=%d at (%d,%d) index=%d", ev.Tick, ev.Type, p.ID, p.Loc.X, p.Loc.Y, p.Index)
	case events.FoodPayload:
		s.logger.Printf("[tick %d] %s id=%d at (%d,%d)", ev.Tick, ev.Type, p.ID, p.Loc.X, p.Loc.Y)
	case events.DirectionPayload:
		s.logger.Printf("[tick %d] %s %s -> %s", ev.Tick, ev.Type, p.From, p.To)
	case events.TickPayload:
		s.logger.Printf("[tick %d] %s head=(%d,%d) len=%d eaten=%d grew=%t", ev.Tick, ev.Type, p.Head.X, p.Head.Y, p.Length, p.Eaten, p.Grew)
	default:
		s.logger.Printf("[tick %d] %s", ev.Tick, ev.Type)
	}
}
