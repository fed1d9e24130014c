package sim

// MaxDeltaMs caps the per-tick delta. A suspended tab or a stalled
// frame must not turn into a giant catch-up step that blows up stamina
// regen and timer decay.
const MaxDeltaMs float64 = 50.0

// Clock turns externally supplied monotonic timestamps into clamped
// per-tick deltas. It carries no goroutines and no wall-clock reads;
// the driver feeds it one timestamp per tick.
type Clock struct {
	lastMs uint64
	primed bool
}

// Delta returns the milliseconds elapsed since the previous call,
// clamped to MaxDeltaMs. The first call after Reset (or ever) primes
// the reference and returns 0.
func (c *Clock) Delta(nowMs uint64) float64 {
	if !c.primed {
		c.lastMs = nowMs
		c.primed = true
		return 0
	}
	if nowMs <= c.lastMs {
		// Non-monotonic input; hold the reference, apply nothing.
		return 0
	}
	delta := float64(nowMs - c.lastMs)
	c.lastMs = nowMs
	if delta > MaxDeltaMs {
		delta = MaxDeltaMs
	}
	return delta
}

// Reset re-primes the reference to nowMs. Called on resume so the
// paused interval never appears as a delta.
func (c *Clock) Reset(nowMs uint64) {
	c.lastMs = nowMs
	c.primed = true
}

// Invalidate clears the reference entirely (match reset).
func (c *Clock) Invalidate() {
	c.primed = false
	c.lastMs = 0
}
