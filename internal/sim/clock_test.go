package sim

import "testing"

// TestClockFirstDelta verifies the first observation primes the
// reference and applies nothing.
func TestClockFirstDelta(t *testing.T) {
	var c Clock
	if d := c.Delta(1000); d != 0 {
		t.Errorf("first delta should be 0, got %v", d)
	}
	if d := c.Delta(1016); d != 16 {
		t.Errorf("expected delta 16, got %v", d)
	}
}

// TestClockClamp verifies oversized deltas are capped so a suspended
// tab cannot produce a catch-up step.
func TestClockClamp(t *testing.T) {
	tests := []struct {
		name    string
		advance uint64
		want    float64
	}{
		{"normal frame", 16, 16},
		{"slow frame", 48, 48},
		{"at clamp", 50, 50},
		{"stalled frame", 200, 50},
		{"tab suspend", 60000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			c.Reset(1000)
			if d := c.Delta(1000 + tt.advance); d != tt.want {
				t.Errorf("expected delta %v, got %v", tt.want, d)
			}
		})
	}
}

// TestClockReset verifies Reset swallows the elapsed interval.
func TestClockReset(t *testing.T) {
	var c Clock
	c.Reset(0)
	c.Delta(16)

	// Simulate a 5 second pause, then resume
	c.Reset(5016)
	if d := c.Delta(5032); d != 16 {
		t.Errorf("expected delta 16 after reset, got %v", d)
	}
}

// TestClockNonMonotonic verifies a timestamp going backwards applies
// nothing and keeps the reference.
func TestClockNonMonotonic(t *testing.T) {
	var c Clock
	c.Reset(1000)
	if d := c.Delta(900); d != 0 {
		t.Errorf("expected 0 for non-monotonic input, got %v", d)
	}
	if d := c.Delta(1016); d != 16 {
		t.Errorf("expected delta 16 from held reference, got %v", d)
	}
}
