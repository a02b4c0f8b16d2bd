package component

import "math"

// Counter is a tick counter. Increment wraps modulo 2^32: after
// math.MaxUint32 the next value is 0.
type Counter struct {
	Value uint32
}

// Increment advances the counter and reports whether it wrapped.
func (c *Counter) Increment() (wrapped bool) {
	wrapped = c.Value == math.MaxUint32
	c.Value++
	return wrapped
}
