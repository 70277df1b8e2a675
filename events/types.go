package events

// EventType represents the type of simulation event
type EventType int

const (
	// EventSegmentSpawned signals a new body part, head included
	// Trigger: snake.New, snake.Grow
	// Consumer: StatusSystem, JournalSystem | Payload: SegmentPayload
	EventSegmentSpawned EventType = iota

	// EventFoodSpawned signals a new food cell
	// Trigger: FoodSystem (1.0s gate)
	// Consumer: StatusSystem, JournalSystem | Payload: FoodPayload
	EventFoodSpawned

	// EventFoodEaten signals food destroyed under the head
	// Trigger: snake.Eat | Payload: FoodPayload
	// Consumer: AudioSystem, StatusSystem, JournalSystem
	EventFoodEaten

	// EventSnakeGrew signals a segment appended at the recorded tail end
	// Trigger: snake.Grow | Payload: SegmentPayload
	// Consumer: AudioSystem, JournalSystem
	EventSnakeGrew

	// EventDirectionChanged signals an accepted heading change
	// Trigger: snake.ResolveDirection | Payload: DirectionPayload
	// Consumer: JournalSystem
	EventDirectionChanged

	// EventTick marks the end of one movement tick
	// Trigger: snake.Tick | Payload: TickPayload
	// Consumer: StatusSystem
	EventTick
)

func (t EventType) String() string {
	switch t {
	case EventSegmentSpawned:
		return "SegmentSpawned"
	case EventFoodSpawned:
		return "FoodSpawned"
	case EventFoodEaten:
		return "FoodEaten"
	case EventSnakeGrew:
		return "SnakeGrew"
	case EventDirectionChanged:
		return "DirectionChanged"
	case EventTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Movement tick the event belongs to
}
