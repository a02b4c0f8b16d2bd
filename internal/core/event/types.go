package event

import "github.com/gridsim/gridsim/internal/core/ecs"

// Axis names the coordinate a reflection happened on.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Reflected is emitted when an entity bounces off a grid edge.
type Reflected struct {
	Entity ecs.EntityID
	Axis   Axis
	At     int32 // clamped coordinate
}

// CounterWrapped is emitted when a counter overflows back to zero.
type CounterWrapped struct {
	Entity ecs.EntityID
}

// Despawned is emitted for each entity removed by the cleanup pass.
type Despawned struct {
	Count int
}
