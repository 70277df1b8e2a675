package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // space, p
	IntentToggleMute  // m
	IntentSnapshot    // Ctrl+S, writes a PNG of the board

	// IntentMove marks a movement key; the direction is recorded in the Tracker
	IntentMove
)

func (i IntentType) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentTogglePause:
		return "TogglePause"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentSnapshot:
		return "Snapshot"
	case IntentMove:
		return "Move"
	default:
		return "Unknown"
	}
}
