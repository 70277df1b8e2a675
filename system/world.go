package system

import (
	"github.com/lixenwraith/gridsnake/events"
	"github.com/lixenwraith/gridsnake/snake"
	"github.com/lixenwraith/gridsnake/status"
)

// World is the context every system and handler receives
type World struct {
	Snake  *snake.State
	Queue  *events.EventQueue
	Status *status.Registry
}

// NewWorld wires a simulation to a fresh queue and status registry
func NewWorld(cfg snake.Config) (*World, error) {
	q := events.NewEventQueue()
	s, err := snake.New(cfg, q)
	if err != nil {
		return nil, err
	}
	return &World{
		Snake:  s,
		Queue:  q,
		Status: status.NewRegistry(),
	}, nil
}
