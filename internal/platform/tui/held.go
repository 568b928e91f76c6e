package tui

import (
	"time"

	"github.com/vovakirdan/cubeworld/internal/core"
)

// heldWindow is how long a key counts as held after its last press event.
// Terminals deliver no key-up events; auto-repeat refreshes the window, so
// the value must outlast the repeat interval plus the initial repeat delay.
const heldWindow = 250 * time.Millisecond

// heldTracker synthesizes level-triggered input from press events.
type heldTracker struct {
	window time.Duration
	seen   map[core.Action]time.Time
}

func newHeldTracker(window time.Duration) *heldTracker {
	return &heldTracker{
		window: window,
		seen:   make(map[core.Action]time.Time),
	}
}

// mark records a press event for the action.
func (h *heldTracker) mark(a core.Action, now time.Time) {
	h.seen[a] = now
}

// apply marks every non-expired action as held on the input frame and drops
// the expired ones.
func (h *heldTracker) apply(f *core.InputFrame, now time.Time) {
	for a, last := range h.seen {
		if now.Sub(last) > h.window {
			delete(h.seen, a)
			continue
		}
		f.Hold(a)
	}
}
