package parameter

import "time"

// Audio feedback
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	EatToneHz       = 880.0
	EatToneDuration = 60 * time.Millisecond

	GrowToneHz       = 660.0
	GrowToneDuration = 90 * time.Millisecond

	// AudioVolume is the effects.Volume exponent (base 2) applied to every tone
	AudioVolume = -2.0
)
