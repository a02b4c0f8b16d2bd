package tick

import (
	"context"
	"time"
)

// Clock suspends the caller for a fixed duration. Implementations must not
// resume before d has elapsed.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on a reusable time.Timer, which measures monotonic time.
type RealClock struct {
	timer *time.Timer
}

func NewRealClock() *RealClock {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return &RealClock{timer: t}
}

func (c *RealClock) Sleep(ctx context.Context, d time.Duration) error {
	c.timer.Reset(d)
	select {
	case <-c.timer.C:
		return nil
	case <-ctx.Done():
		c.timer.Stop()
		return ctx.Err()
	}
}
