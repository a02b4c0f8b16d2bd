package component

// Position is a grid cell coordinate.
type Position struct {
	X int32
	Y int32
}

// Velocity is the per-tick displacement applied by the movement system.
type Velocity struct {
	VX int32
	VY int32
}
