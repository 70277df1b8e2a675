package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gridsnake/parameter"
)

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at vol in linear gain; non-positive gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone builds a shaped sine burst
func tone(rate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	burst := beep.Take(rate.N(duration), sine)
	attack := duration / 10
	return newEnvelope(burst, duration, attack, duration/3, rate), nil
}

// newSoundStreamer renders one effect at the configured rate
func newSoundStreamer(rate beep.SampleRate, s Sound) (beep.Streamer, error) {
	switch s {
	case SoundEat:
		return tone(rate, parameter.EatToneHz, parameter.EatToneDuration)
	case SoundGrow:
		low, err := tone(rate, parameter.GrowToneHz, parameter.GrowToneDuration)
		if err != nil {
			return nil, err
		}
		high, err := tone(rate, parameter.GrowToneHz*1.5, parameter.GrowToneDuration)
		if err != nil {
			return nil, err
		}
		// Rising two-note chirp
		return beep.Seq(low, high), nil
	default:
		return nil, nil
	}
}
