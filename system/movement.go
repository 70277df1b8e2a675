package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/status"
)

// MovementSystem advances the snake one cell per fixed step
// Move, eat and grow run in that order inside snake.State.Tick
type MovementSystem struct {
	clock engine.TimeProvider

	// OnTick receives the wall time each tick took; may be nil
	OnTick func(time.Duration)

	statTickSeconds *status.AtomicFloat
	statTickTotal   *status.AtomicFloat
	statSteps       *atomic.Int64
}

// NewMovementSystem measures tick cost with clock; nil uses the system clock
func NewMovementSystem(w *World, clock engine.TimeProvider) *MovementSystem {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &MovementSystem{
		clock:           clock,
		statTickSeconds: w.Status.Floats.Get(status.KeyTickSeconds),
		statTickTotal:   w.Status.Floats.Get(status.KeyTickTotal),
		statSteps:       w.Status.Ints.Get(status.KeyFrameSteps),
	}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Update(w *World) {
	start := s.clock.Now()
	w.Snake.Tick()
	elapsed := s.clock.Now().Sub(start)

	s.statSteps.Add(1)
	s.statTickSeconds.Set(elapsed.Seconds())
	s.statTickTotal.Add(elapsed.Seconds())
	if s.OnTick != nil {
		s.OnTick(elapsed)
	}
}
