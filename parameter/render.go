package parameter

// Pixel projection of the windowed build
const (
	// CellSize is the sprite edge length in pixels
	CellSize = 20

	// WindowSize is the square window edge length in pixels
	WindowSize = 300

	// ProjectionOrigin is the grid cell projected to pixel (0, 0)
	ProjectionOrigin = 8

	// ProjectionLimit is the pixel clamp on both axes: WindowSize/2 - CellSize/2
	ProjectionLimit = WindowSize/2 - CellSize/2
)

// Terminal layout
const (
	// TerminalCellWidth is the number of columns per grid cell, keeps cells square
	TerminalCellWidth = 2

	// TerminalStatusRows is reserved below the board
	TerminalStatusRows = 2
)
