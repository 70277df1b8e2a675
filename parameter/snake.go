package parameter

import "time"

// Grid dimensions
const (
	// GridSize is the number of cells per axis food may spawn in: [0, GridSize)
	GridSize = 15

	// ClampMin and ClampMax bound the head on its moving axis
	// ClampMax equals GridSize, one past the last spawnable index; kept configurable
	ClampMin = 0
	ClampMax = 15
)

// Initial snake layout, head first
const (
	HeadStartX = 8
	HeadStartY = 8
	BodyStartX = 8
	BodyStartY = 7
)

// Fixed-step cadences
const (
	// MoveInterval is the movement/eat/grow tick period
	MoveInterval = 350 * time.Millisecond

	// FoodInterval is the food spawn period, independent of MoveInterval
	FoodInterval = 1 * time.Second
)
