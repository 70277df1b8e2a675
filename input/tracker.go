package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridsnake/core"
)

// Tracker turns terminal key presses into per-frame held-key snapshots
// Terminals report presses (and autorepeat) but never releases, so a press
// counts as held until the next snapshot is taken
type Tracker struct {
	mu      sync.Mutex
	pending Keys
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// HandleKey classifies a key event and records movement presses
func (t *Tracker) HandleKey(ev *tcell.EventKey) IntentType {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return IntentQuit
	case tcell.KeyCtrlS:
		return IntentSnapshot
	case tcell.KeyUp:
		return t.press(core.Up)
	case tcell.KeyDown:
		return t.press(core.Down)
	case tcell.KeyLeft:
		return t.press(core.Left)
	case tcell.KeyRight:
		return t.press(core.Right)
	case tcell.KeyRune:
		return t.handleRune(ev.Rune())
	}
	return IntentNone
}

func (t *Tracker) handleRune(r rune) IntentType {
	switch r {
	case 'q', 'Q':
		return IntentQuit
	case ' ', 'p', 'P':
		return IntentTogglePause
	case 'm', 'M':
		return IntentToggleMute
	case 'w', 'W', 'k':
		return t.press(core.Up)
	case 'a', 'A', 'h':
		return t.press(core.Left)
	case 's', 'S', 'j':
		return t.press(core.Down)
	case 'd', 'D', 'l':
		return t.press(core.Right)
	}
	return IntentNone
}

func (t *Tracker) press(d core.Direction) IntentType {
	t.mu.Lock()
	t.pending = t.pending.With(d)
	t.mu.Unlock()
	return IntentMove
}

// Keys returns the keys pressed since the previous call and clears them
func (t *Tracker) Keys() Keys {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := t.pending
	t.pending = Keys{}
	return k
}
