package engine

import (
	"time"

	"github.com/lixenwraith/gridsnake/events"
)

// System is a unit of per-frame or fixed-step work over context T
type System[T any] interface {
	Update(ctx T)
}

// SystemFunc adapts a function to System
type SystemFunc[T any] func(ctx T)

func (f SystemFunc[T]) Update(ctx T) { f(ctx) }

type fixedSystem[T any] struct {
	gate   *Gate
	system System[T]
}

// FrameStats reports the work done by one Frame call
type FrameStats struct {
	DT         time.Duration
	Steps      int
	Dispatched int
}

// Scheduler drives frame and fixed-step systems from a game clock
// Single-threaded: Frame must be called from one goroutine
//
// Frame order:
//  1. Frame systems, in registration order
//  2. Fixed systems, each once per elapsed step of its gate
//  3. Event dispatch of everything queued during 1 and 2
type Scheduler[T any] struct {
	ctx    T
	clock  TimeProvider
	router *events.Router[T]

	frame []System[T]
	fixed []fixedSystem[T]

	last    time.Time
	started bool
}

// NewScheduler creates a scheduler reading time from clock and dispatching from queue
func NewScheduler[T any](ctx T, clock TimeProvider, queue *events.EventQueue) *Scheduler[T] {
	return &Scheduler[T]{
		ctx:    ctx,
		clock:  clock,
		router: events.NewRouter[T](queue),
	}
}

// AddFrameSystem registers a system run on every frame
func (s *Scheduler[T]) AddFrameSystem(sys System[T]) {
	s.frame = append(s.frame, sys)
}

// AddFixedSystem registers a system run once per elapsed interval
func (s *Scheduler[T]) AddFixedSystem(interval time.Duration, sys System[T]) {
	s.fixed = append(s.fixed, fixedSystem[T]{gate: NewGate(interval), system: sys})
}

// RegisterEventHandler adds an event handler to the router
func (s *Scheduler[T]) RegisterEventHandler(h events.Handler[T]) {
	s.router.Register(h)
}

// Frame advances one frame using the current clock time
func (s *Scheduler[T]) Frame() FrameStats {
	return s.FrameAt(s.clock.Now())
}

// FrameAt advances one frame as if the clock read now
// The first call only establishes the time base; a paused clock yields dt == 0
func (s *Scheduler[T]) FrameAt(now time.Time) FrameStats {
	var stats FrameStats
	if s.started {
		stats.DT = now.Sub(s.last)
		if stats.DT < 0 {
			stats.DT = 0
		}
	}
	s.last = now
	s.started = true

	for _, sys := range s.frame {
		sys.Update(s.ctx)
	}

	for _, fs := range s.fixed {
		n := fs.gate.Poll(stats.DT)
		for i := 0; i < n; i++ {
			fs.system.Update(s.ctx)
		}
		stats.Steps += n
	}

	stats.Dispatched = s.router.DispatchAll(s.ctx)
	return stats
}
