package engine

import (
	"time"

	"github.com/lixenwraith/gridsnake/parameter"
)

// Gate is a fixed-interval accumulator polled once per frame
// Elapsed time carries over between polls so the long-run step rate matches the interval
type Gate struct {
	interval time.Duration
	maxSteps int
	acc      time.Duration
}

// NewGate creates a gate firing every interval, capped at parameter.MaxStepsPerFrame per poll
func NewGate(interval time.Duration) *Gate {
	return &Gate{
		interval: interval,
		maxSteps: parameter.MaxStepsPerFrame,
	}
}

// Poll adds dt and returns how many whole intervals have elapsed
// When more than maxSteps are owed the backlog is dropped
func (g *Gate) Poll(dt time.Duration) int {
	if g.interval <= 0 || dt <= 0 {
		return 0
	}

	g.acc += dt
	steps := int(g.acc / g.interval)
	g.acc -= time.Duration(steps) * g.interval

	if steps > g.maxSteps {
		steps = g.maxSteps
		g.acc = 0
	}
	return steps
}
