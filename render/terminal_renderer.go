package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/snake"
	"github.com/lixenwraith/gridsnake/status"
)

// HUD carries the non-simulation lines drawn under the board
type HUD struct {
	Paused  bool
	Muted   bool
	Message string
}

// TerminalRenderer draws a snake.View onto a tcell screen
// Each grid cell is TerminalCellWidth columns wide; row 0 of the board is the top extent
type TerminalRenderer struct {
	screen tcell.Screen
	reg    *status.Registry
}

func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, reg: reg}
}

// BoardSize returns the board footprint in terminal cells including the border
func BoardSize(v snake.View) (w, h int) {
	lo, hi := v.Extent()
	n := hi - lo + 1
	return n*parameter.TerminalCellWidth + 2, n + 2
}

// CellOrigin returns the screen column and row of loc's left half
func CellOrigin(v snake.View, loc core.Location) (x, y int) {
	lo, hi := v.Extent()
	return 1 + (loc.X-lo)*parameter.TerminalCellWidth, 1 + (hi - loc.Y)
}

// RenderFrame clears the screen and draws board, entities and status
func (r *TerminalRenderer) RenderFrame(v snake.View, hud HUD) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(tcellColor(ColorBackground))

	w, h := BoardSize(v)
	r.drawBorder(w, h, base.Foreground(tcellColor(ColorBorder)))

	// Food first so body and head overwrite it
	for _, f := range v.Foods {
		r.drawCell(v, f.Loc, '●', base.Foreground(tcellColor(ColorFood)))
	}
	for i := len(v.Segments) - 1; i >= 1; i-- {
		r.drawCell(v, v.Segments[i].Loc, '█', base.Foreground(tcellColor(ColorBody)))
	}
	if len(v.Segments) > 0 {
		r.drawCell(v, v.Segments[0].Loc, headGlyph(v.Direction), base.Foreground(tcellColor(ColorHead)).Bold(true))
	}

	r.drawStatus(v, hud, h, base.Foreground(tcellColor(ColorText)))

	if hud.Paused {
		banner := " PAUSED "
		r.drawText((w-len(banner))/2, h/2, banner, base.Foreground(tcell.ColorBlack).Background(tcellColor(ColorPaused)))
	}

	r.screen.Show()
}

func headGlyph(d core.Direction) rune {
	switch d {
	case core.Up:
		return '▲'
	case core.Down:
		return '▼'
	case core.Left:
		return '◀'
	case core.Right:
		return '▶'
	default:
		return '■'
	}
}

func (r *TerminalRenderer) drawCell(v snake.View, loc core.Location, glyph rune, style tcell.Style) {
	x, y := CellOrigin(v, loc)
	r.screen.SetContent(x, y, glyph, nil, style)
	for i := 1; i < parameter.TerminalCellWidth; i++ {
		fill := ' '
		if glyph == '█' {
			fill = '█'
		}
		r.screen.SetContent(x+i, y, fill, nil, style)
	}
}

func (r *TerminalRenderer) drawBorder(w, h int, style tcell.Style) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, '─', nil, style)
		r.screen.SetContent(x, h-1, '─', nil, style)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(w-1, y, '│', nil, style)
	}
	r.screen.SetContent(0, 0, '┌', nil, style)
	r.screen.SetContent(w-1, 0, '┐', nil, style)
	r.screen.SetContent(0, h-1, '└', nil, style)
	r.screen.SetContent(w-1, h-1, '┘', nil, style)
}

func (r *TerminalRenderer) drawStatus(v snake.View, hud HUD, boardH int, style tcell.Style) {
	var eaten, active int64
	if r.reg != nil {
		eaten = r.reg.Ints.Get(status.KeyFoodEaten).Load()
		active = r.reg.Ints.Get(status.KeyFoodActive).Load()
	}
	head := "-"
	if len(v.Segments) > 0 {
		head = fmt.Sprintf("(%d,%d)", v.Segments[0].Loc.X, v.Segments[0].Loc.Y)
	}
	line := fmt.Sprintf("len %d  eaten %d  food %d  head %s  %s  tick %d",
		len(v.Segments), eaten, active, head, v.Direction, v.Ticks)
	r.drawText(0, boardH, line, style)

	help := "arrows/wasd/hjkl move  space pause  m mute  ^S snapshot  q quit"
	if hud.Muted {
		help += "  [muted]"
	}
	if hud.Message != "" {
		help = hud.Message
	}
	r.drawText(0, boardH+1, help, style.Dim(true))
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
