package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsnake/parameter"
)

// BeepPlayer mixes effect tones onto the system speaker
type BeepPlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	gain   float64
	muted  atomic.Bool
	closed bool
}

// NewBeepPlayer initializes the speaker and starts an always-on mixer
// Errors mean no audio device; callers fall back to NopPlayer
func NewBeepPlayer() (*BeepPlayer, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	p := &BeepPlayer{
		rate:  rate,
		mixer: &beep.Mixer{},
		gain:  math.Pow(2, parameter.AudioVolume),
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues s on the mixer and returns immediately
func (p *BeepPlayer) Play(s Sound) {
	if p.muted.Load() {
		return
	}
	st, err := newSoundStreamer(p.rate, s)
	if err != nil || st == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(newVolume(st, p.gain))
	speaker.Unlock()
}

func (p *BeepPlayer) SetMuted(m bool) { p.muted.Store(m) }

func (p *BeepPlayer) Muted() bool { return p.muted.Load() }

// Close silences the mixer and releases the device
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}

// NopPlayer discards sounds; used with -mute or when no device is present
type NopPlayer struct {
	muted atomic.Bool
}

func (*NopPlayer) Play(Sound) {}

func (n *NopPlayer) SetMuted(m bool) { n.muted.Store(m) }

func (n *NopPlayer) Muted() bool { return n.muted.Load() }

func (*NopPlayer) Close() {}
