package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/snake"
)

// DrawImage renders v at window resolution using the same projection as the windowed build
func DrawImage(v snake.View) image.Image {
	dc := gg.NewContext(parameter.WindowSize, parameter.WindowSize)
	dc.SetColor(ColorBackground)
	dc.Clear()

	cell := float64(parameter.CellSize)
	fill := func(x, y float64, o snake.Occupant) {
		dc.SetColor(OccupantColor(o))
		dc.DrawRectangle(x+1, y+1, cell-2, cell-2)
		dc.Fill()
	}

	for _, f := range v.Foods {
		x, y := ScreenRect(f.Loc)
		dc.SetColor(OccupantColor(snake.OccupantFood))
		dc.DrawCircle(x+cell/2, y+cell/2, cell/3)
		dc.Fill()
	}
	for i := len(v.Segments) - 1; i >= 1; i-- {
		x, y := ScreenRect(v.Segments[i].Loc)
		fill(x, y, snake.OccupantBody)
	}
	if len(v.Segments) > 0 {
		x, y := ScreenRect(v.Segments[0].Loc)
		fill(x, y, snake.OccupantHead)
	}

	dc.SetColor(ColorText)
	dc.DrawString(fmt.Sprintf("len %d  tick %d", len(v.Segments), v.Ticks), 4, 12)
	return dc.Image()
}

// SavePNG writes DrawImage(v) to path
func SavePNG(path string, v snake.View) error {
	if err := gg.SavePNG(path, DrawImage(v)); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
