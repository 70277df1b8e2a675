package snake

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
)

var (
	ErrInvalidGrid      = errors.New("grid size must be positive")
	ErrInvalidBounds    = errors.New("clamp minimum exceeds maximum")
	ErrStartOutOfBounds = errors.New("start cell outside clamp bounds")
)

// Bounds is the inclusive clamp range applied to the head on its moving axis
type Bounds struct {
	Min, Max int
}

// Clamp limits v to [Min, Max]
func (b Bounds) Clamp(v int) int {
	return max(b.Min, min(v, b.Max))
}

// Contains reports whether both coordinates of l lie within the bounds
func (b Bounds) Contains(l core.Location) bool {
	return l.X >= b.Min && l.X <= b.Max && l.Y >= b.Min && l.Y <= b.Max
}

// Config holds the simulation constants
type Config struct {
	// GridSize bounds food spawning to [0, GridSize) on both axes
	GridSize int

	// Bounds clamps head movement; the default Max of 15 sits one past the
	// last spawnable index and is adjustable
	Bounds Bounds

	// HeadStart and BodyStart place the initial two segments
	HeadStart core.Location
	BodyStart core.Location

	// Heading is the initial direction
	Heading core.Direction

	// Seed drives food placement; 0 picks a random seed
	Seed uint64
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		GridSize:  parameter.GridSize,
		Bounds:    Bounds{Min: parameter.ClampMin, Max: parameter.ClampMax},
		HeadStart: core.Location{X: parameter.HeadStartX, Y: parameter.HeadStartY},
		BodyStart: core.Location{X: parameter.BodyStartX, Y: parameter.BodyStartY},
		Heading:   core.Up,
	}
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidGrid, c.GridSize)
	}
	if c.Bounds.Min > c.Bounds.Max {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidBounds, c.Bounds.Min, c.Bounds.Max)
	}
	if !c.Bounds.Contains(c.HeadStart) {
		return fmt.Errorf("%w: head %+v", ErrStartOutOfBounds, c.HeadStart)
	}
	if !c.Bounds.Contains(c.BodyStart) {
		return fmt.Errorf("%w: body %+v", ErrStartOutOfBounds, c.BodyStart)
	}
	return nil
}
