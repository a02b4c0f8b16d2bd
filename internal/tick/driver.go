package tick

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Scheduler is what the driver runs once per tick.
type Scheduler interface {
	Tick() error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func() error

func (f SchedulerFunc) Tick() error { return f() }

// Driver is the single cooperative loop: sleep one interval, run the
// scheduler to completion, repeat. Ticks never overlap.
type Driver struct {
	clock    Clock
	sched    Scheduler
	interval time.Duration
	maxTicks uint64
	log      *zap.Logger
	ticks    uint64
}

// NewDriver creates a driver. maxTicks of 0 runs until ctx is cancelled.
func NewDriver(clock Clock, sched Scheduler, interval time.Duration, maxTicks uint64, log *zap.Logger) *Driver {
	return &Driver{
		clock:    clock,
		sched:    sched,
		interval: interval,
		maxTicks: maxTicks,
		log:      log,
	}
}

// Run loops until the tick limit is reached, ctx is cancelled (returns nil), or
// a tick fails (returns the error; the world may be inconsistent).
func (d *Driver) Run(ctx context.Context) error {
	for d.maxTicks == 0 || d.ticks < d.maxTicks {
		if err := d.clock.Sleep(ctx, d.interval); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				d.log.Info("tick loop stopped", zap.Uint64("ticks", d.ticks))
				return nil
			}
			return fmt.Errorf("sleep: %w", err)
		}
		d.ticks++
		d.log.Debug("main loop running", zap.Uint64("tick", d.ticks))
		if err := d.sched.Tick(); err != nil {
			return err
		}
	}
	d.log.Info("tick limit reached", zap.Uint64("ticks", d.ticks))
	return nil
}

// Ticks is the number of completed scheduler runs.
func (d *Driver) Ticks() uint64 { return d.ticks }
