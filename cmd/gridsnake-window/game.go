package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/metrics"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/render"
	"github.com/lixenwraith/gridsnake/snake"
	"github.com/lixenwraith/gridsnake/status"
	"github.com/lixenwraith/gridsnake/system"
)

// keyboard reports held keys straight from ebiten; windows see releases
type keyboard struct{}

func (keyboard) Keys() input.Keys {
	return input.Keys{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

type game struct {
	world    *system.World
	pipeline *system.Pipeline
	clock    *engine.PausableClock
	player   audio.Player
	exporter *metrics.Exporter
	view     snake.View
}

func newGame(w *system.World, p *system.Pipeline, clock *engine.PausableClock, player audio.Player, exporter *metrics.Exporter) *game {
	return &game{
		world:    w,
		pipeline: p,
		clock:    clock,
		player:   player,
		exporter: exporter,
		view:     w.Snake.View(),
	}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.world.Status.Bools.Get(status.KeyEnginePaused).Store(g.clock.Toggle())
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.player.SetMuted(!g.player.Muted())
		g.world.Status.Bools.Get(status.KeyAudioMuted).Store(g.player.Muted())
	}

	g.pipeline.Frame()
	g.view = g.world.Snake.View()
	if g.exporter != nil {
		g.exporter.Publish(g.view)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	cell := float32(parameter.CellSize)

	for _, f := range g.view.Foods {
		x, y := render.ScreenRect(f.Loc)
		vector.DrawFilledCircle(screen, float32(x)+cell/2, float32(y)+cell/2, cell/3, render.ColorFood, true)
	}
	for i := len(g.view.Segments) - 1; i >= 0; i-- {
		x, y := render.ScreenRect(g.view.Segments[i].Loc)
		c := render.ColorBody
		if i == 0 {
			c = render.ColorHead
		}
		vector.DrawFilledRect(screen, float32(x)+1, float32(y)+1, cell-2, cell-2, c, true)
	}

	hud := fmt.Sprintf("len %d  eaten %d  tick %d",
		len(g.view.Segments),
		g.world.Status.Ints.Get(status.KeyFoodEaten).Load(),
		g.view.Ticks)
	if g.clock.IsPaused() {
		hud += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)
}

func (g *game) Layout(_, _ int) (int, int) {
	return parameter.WindowSize, parameter.WindowSize
}
