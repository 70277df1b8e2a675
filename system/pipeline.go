package system

import (
	"log"
	"time"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Options configures the system pipeline
type Options struct {
	Input        input.Source
	Player       audio.Player
	Journal      *log.Logger // nil disables the journal
	Clock        engine.TimeProvider
	MoveInterval time.Duration
	FoodInterval time.Duration
}

func (o *Options) applyDefaults() {
	if o.Input == nil {
		o.Input = input.SourceFunc(func() input.Keys { return input.Keys{} })
	}
	if o.Clock == nil {
		o.Clock = engine.NewMonotonicTimeProvider()
	}
	if o.MoveInterval <= 0 {
		o.MoveInterval = parameter.MoveInterval
	}
	if o.FoodInterval <= 0 {
		o.FoodInterval = parameter.FoodInterval
	}
}

// Pipeline is a scheduler with its systems wired in frame order
type Pipeline struct {
	*engine.Scheduler[*World]
	Movement *MovementSystem
}

// NewPipeline registers input per frame, then movement and food on their gates,
// then the audio, status and journal handlers
func NewPipeline(w *World, opts Options) *Pipeline {
	opts.applyDefaults()

	sched := engine.NewScheduler(w, opts.Clock, w.Queue)
	movement := NewMovementSystem(w, nil)

	sched.AddFrameSystem(NewInputSystem(opts.Input))
	sched.AddFixedSystem(opts.MoveInterval, movement)
	sched.AddFixedSystem(opts.FoodInterval, NewFoodSystem())

	sched.RegisterEventHandler(NewStatusSystem(w))
	sched.RegisterEventHandler(NewAudioSystem(opts.Player))
	if opts.Journal != nil {
		sched.RegisterEventHandler(NewJournalSystem(w, opts.Journal))
	}

	return &Pipeline{Scheduler: sched, Movement: movement}
}
