package world

import (
	"fmt"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/core/ecs"
)

// Grid is the closed cell area entities move in: 0..Width-1 by 0..Height-1.
type Grid struct {
	Width  int32
	Height int32
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p component.Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// World is the entity registry plus the fixed set of component stores.
// Accessed only from the tick loop goroutine — no locks needed.
type World struct {
	*ecs.World

	Positions  *ecs.Store[component.Position]
	Velocities *ecs.Store[component.Velocity]
	Counters   *ecs.Store[component.Counter]

	Grid Grid
}

// New builds a sealed world that can hold up to maxEntities live entities.
func New(maxEntities int, grid Grid) *World {
	w := ecs.NewWorld(maxEntities)
	ww := &World{
		World:      w,
		Positions:  ecs.NewStore[component.Position](w),
		Velocities: ecs.NewStore[component.Velocity](w),
		Counters:   ecs.NewStore[component.Counter](w),
		Grid:       grid,
	}
	w.Seal()
	return ww
}

// Blueprint lists the components of one entity to spawn. Nil fields are left off.
type Blueprint struct {
	Position *component.Position
	Velocity *component.Velocity
	Counter  *component.Counter
}

// Spawn creates an entity carrying the blueprint's components.
func (w *World) Spawn(bp Blueprint) (ecs.EntityID, error) {
	id, err := w.World.Spawn()
	if err != nil {
		return 0, err
	}
	if err := w.attach(id, bp); err != nil {
		_ = w.Despawn(id)
		return 0, err
	}
	return id, nil
}

func (w *World) attach(id ecs.EntityID, bp Blueprint) error {
	if bp.Position != nil {
		if err := w.Positions.Insert(id, *bp.Position); err != nil {
			return fmt.Errorf("attach position: %w", err)
		}
	}
	if bp.Velocity != nil {
		if err := w.Velocities.Insert(id, *bp.Velocity); err != nil {
			return fmt.Errorf("attach velocity: %w", err)
		}
	}
	if bp.Counter != nil {
		if err := w.Counters.Insert(id, *bp.Counter); err != nil {
			return fmt.Errorf("attach counter: %w", err)
		}
	}
	return nil
}

// SpawnAll spawns every blueprint in order and stops at the first failure.
func (w *World) SpawnAll(bps []Blueprint) (int, error) {
	for i, bp := range bps {
		if _, err := w.Spawn(bp); err != nil {
			return i, fmt.Errorf("entity #%d: %w", i, err)
		}
	}
	return len(bps), nil
}

// DefaultPopulation is the population used when no seed is configured:
// one mover at the origin heading diagonally, and one counter.
func DefaultPopulation() []Blueprint {
	return []Blueprint{
		{
			Position: &component.Position{X: 0, Y: 0},
			Velocity: &component.Velocity{VX: 1, VY: 1},
		},
		{
			Counter: &component.Counter{},
		},
	}
}
