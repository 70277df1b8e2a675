package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameInterval is the terminal frame interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxStepsPerFrame caps catch-up steps a gate may fire after a stalled frame
	MaxStepsPerFrame = 4
)

// Event bus limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Journal throttling
const (
	// JournalRate is the sustained number of logged simulation events per second
	JournalRate = 20

	// JournalBurst is the number of events logged back to back before throttling
	JournalBurst = 40
)
