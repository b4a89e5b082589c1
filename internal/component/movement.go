// component/movement.go
package component

// Position — world-space position, unbounded
type Position struct {
	X, Y float64
}

// Velocity — movement speed in units per tick
type Velocity struct {
	Speed float64
}

// Facing records which way an entity looks. The render pass flips
// sprites horizontally by it; the simulation only writes it.
type Facing struct {
	Right bool
}
