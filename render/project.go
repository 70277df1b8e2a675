package render

import (
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Project maps a grid cell to a window pixel offset from the center
// Each axis is (loc - ProjectionOrigin) * CellSize, clamped to ±ProjectionLimit
func Project(loc core.Location) (px, py float64) {
	return projectAxis(loc.X), projectAxis(loc.Y)
}

func projectAxis(v int) float64 {
	p := (v - parameter.ProjectionOrigin) * parameter.CellSize
	p = max(-parameter.ProjectionLimit, min(parameter.ProjectionLimit, p))
	return float64(p)
}

// ScreenRect returns the top-left corner of loc's sprite in window coordinates
// Window y grows downward, grid y grows upward
func ScreenRect(loc core.Location) (x, y float64) {
	px, py := Project(loc)
	half := float64(parameter.WindowSize) / 2
	cell := float64(parameter.CellSize) / 2
	return half + px - cell, half - py - cell
}
