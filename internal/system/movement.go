package system

import (
	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/core/ecs"
	"github.com/gridsim/gridsim/internal/core/event"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/world"
)

// MovementSystem advances every entity holding Position and Velocity by one
// step and bounces it off the grid edges. Phase 2 (Update).
//
// Each axis gets a single reflect-and-clamp pass per tick: a step that
// overshoots by more than one cell saturates at the edge rather than bouncing
// back inside.
type MovementSystem struct {
	bus *event.Bus
}

// NewMovementSystem creates the system. bus may be nil.
func NewMovementSystem(bus *event.Bus) *MovementSystem {
	return &MovementSystem{bus: bus}
}

func (s *MovementSystem) Name() string         { return "movement" }
func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Run(w *world.World) error {
	ecs.Each2(w.Positions, w.Velocities, func(id ecs.EntityID, p *component.Position, v *component.Velocity) {
		var bx, by bool
		p.X, v.VX, bx = reflectAxis(p.X+v.VX, v.VX, w.Grid.Width)
		p.Y, v.VY, by = reflectAxis(p.Y+v.VY, v.VY, w.Grid.Height)
		if s.bus == nil {
			return
		}
		if bx {
			event.Emit(s.bus, event.Reflected{Entity: id, Axis: event.AxisX, At: p.X})
		}
		if by {
			event.Emit(s.bus, event.Reflected{Entity: id, Axis: event.AxisY, At: p.Y})
		}
	})
	return nil
}

// reflectAxis clamps c into [0, size) and negates v when c left that range.
func reflectAxis(c, v, size int32) (int32, int32, bool) {
	switch {
	case c < 0:
		return 0, -v, true
	case c >= size:
		return size - 1, -v, true
	}
	return c, v, false
}
