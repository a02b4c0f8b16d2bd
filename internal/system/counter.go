package system

import (
	"strconv"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/core/ecs"
	"github.com/gridsim/gridsim/internal/core/event"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/world"
)

// CounterSystem increments every Counter by one and emits the new value.
// Phase 2 (Update). Counters wrap at 2^32.
type CounterSystem struct {
	out output.Sink
	bus *event.Bus
}

func NewCounterSystem(out output.Sink, bus *event.Bus) *CounterSystem {
	return &CounterSystem{out: out, bus: bus}
}

func (s *CounterSystem) Name() string         { return "counter" }
func (s *CounterSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *CounterSystem) Run(w *world.World) error {
	var err error
	ecs.Each(w.Counters, func(id ecs.EntityID, c *component.Counter) {
		if c.Increment() && s.bus != nil {
			event.Emit(s.bus, event.CounterWrapped{Entity: id})
		}
		if err == nil {
			err = s.out.WriteLine("counter " + strconv.FormatUint(uint64(c.Value), 10))
		}
	})
	return err
}
