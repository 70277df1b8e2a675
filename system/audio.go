package system

import (
	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/events"
)

// AudioSystem turns eat and grow notifications into effect tones
type AudioSystem struct {
	player audio.Player
}

// NewAudioSystem creates an audio handler; a nil player disables sound
func NewAudioSystem(player audio.Player) *AudioSystem {
	if player == nil {
		player = &audio.NopPlayer{}
	}
	return &AudioSystem{player: player}
}

func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodEaten,
		events.EventSnakeGrew,
	}
}

func (s *AudioSystem) HandleEvent(_ *World, ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodEaten:
		s.player.Play(audio.SoundEat)
	case events.EventSnakeGrew:
		s.player.Play(audio.SoundGrow)
	}
}
