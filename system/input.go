package system

import (
	"github.com/lixenwraith/gridsnake/input"
)

// InputSystem resolves the heading from held keys once per frame
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Update(w *World) {
	w.Snake.ResolveDirection(s.source.Keys())
}
