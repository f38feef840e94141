package sim

// Key identifies a logical control the simulation reacts to. Hosts map
// their own device events onto these before calling HandleInput.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyThrust
	KeyQuit

	keyCount
)

// InputEvent is one key edge: Pressed true for make, false for break.
type InputEvent struct {
	Key     Key
	Pressed bool
}

// inputCache buffers key edges between ticks and tracks held state.
// Edge queues are consumed by the tick loop and cleared after each executed
// tick, so a multi-tick catch-up frame fires each edge only on its first
// tick, while a frame that runs no ticks keeps the edges queued.
type inputCache struct {
	pressed  []Key
	released []Key
	down     [keyCount]bool
}

// handle records one key edge and updates held state.
func (c *inputCache) handle(ev InputEvent) {
	if ev.Key >= keyCount {
		return
	}
	if ev.Pressed {
		c.pressed = append(c.pressed, ev.Key)
		c.down[ev.Key] = true
	} else {
		c.released = append(c.released, ev.Key)
		c.down[ev.Key] = false
	}
}

// isDown reports whether the key is currently held.
func (c *inputCache) isDown(k Key) bool {
	return k < keyCount && c.down[k]
}

// wasPressed reports whether a make event for k is queued.
func (c *inputCache) wasPressed(k Key) bool {
	for _, p := range c.pressed {
		if p == k {
			return true
		}
	}
	return false
}

// wasReleased reports whether a break event for k is queued.
func (c *inputCache) wasReleased(k Key) bool {
	for _, r := range c.released {
		if r == k {
			return true
		}
	}
	return false
}

// clearEvents drops queued edges, keeping held state.
func (c *inputCache) clearEvents() {
	c.pressed = c.pressed[:0]
	c.released = c.released[:0]
}
