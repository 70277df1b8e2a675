package parameter

// Debug log location, relative to the working directory
const (
	LogDir      = "logs"
	LogFileName = "gridsnake.log"

	// LogMaxSize triggers rotation of the previous session's log on startup
	LogMaxSize = 10 * 1024 * 1024
)
