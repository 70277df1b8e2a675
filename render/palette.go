package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/gridsnake/snake"
)

// Palette shared by the terminal, window and image outputs
var (
	ColorBackground color.RGBA = colornames.Black
	ColorBorder     color.RGBA = colornames.Dimgray
	ColorHead       color.RGBA = colornames.Limegreen
	ColorBody       color.RGBA = colornames.Forestgreen
	ColorFood       color.RGBA = colornames.Crimson
	ColorText       color.RGBA = colornames.Lightgray
	ColorPaused     color.RGBA = colornames.Gold
)

// OccupantColor returns the fill colour for a cell occupant
func OccupantColor(o snake.Occupant) color.RGBA {
	switch o {
	case snake.OccupantHead:
		return ColorHead
	case snake.OccupantBody:
		return ColorBody
	case snake.OccupantFood:
		return ColorFood
	default:
		return ColorBackground
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
