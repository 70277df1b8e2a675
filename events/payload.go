package events

import (
	"github.com/lixenwraith/gridsnake/core"
)

// SegmentPayload identifies a body part and its cell
type SegmentPayload struct {
	ID    uint64
	Loc   core.Location
	Index int // Position in the chain, 0 = head
}

// FoodPayload identifies a food entity and its cell
type FoodPayload struct {
	ID  uint64
	Loc core.Location
}

// DirectionPayload carries an accepted heading change
type DirectionPayload struct {
	From, To core.Direction
}

// TickPayload summarizes one movement tick
type TickPayload struct {
	Head   core.Location
	Length int
	Eaten  int
	Grew   bool
}
