package tui

import (
	"time"

	"github.com/vovakirdan/crabout/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last key
// event. Terminals send no key-up events, only auto-repeated presses, so a
// key counts as down until its repeats stop arriving.
const DefaultHoldWindow = 180 * time.Millisecond

// heldKeys emulates held keys from a stream of presses.
type heldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event. Pressing one direction releases the other.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Active reports whether a is still considered held at now.
func (h *heldKeys) Active(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) <= h.window
}

// Release forgets every held key.
func (h *heldKeys) Release() {
	clear(h.last)
}
