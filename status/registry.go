package status

import (
	"math"
	"sync/atomic"
)

// Well-known metric names written by the systems
const (
	KeySnakeLength  = "snake.length"
	KeyFoodEaten    = "food.eaten"
	KeyFoodSpawned  = "food.spawned"
	KeyFoodActive   = "food.active"
	KeySnakeGrowths = "snake.growths"
	KeyTurns        = "snake.turns"
	KeyEngineTicks  = "engine.ticks"
	KeyEnginePaused = "engine.paused"
	KeyAudioMuted   = "audio.muted"
	KeyJournalDrops = "journal.dropped"
	KeyTickSeconds  = "engine.tick_seconds"
	KeyTickTotal    = "engine.tick_seconds_total"
	KeyFrameSteps   = "engine.frame_steps"
)

// AtomicFloat is a float64 stored as bits; zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add atomically adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Registry is the shared status board read by the HUD and the metrics exporter
// Systems cache pointers at construction and write atomics afterwards
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
