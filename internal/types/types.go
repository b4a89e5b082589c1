// internal/types/types.go
package types

// EntityID uniquely identifies an entity within the ECS.
type EntityID uint64

// InputState is the per-tick snapshot of player input supplied by the shell.
// The simulation never polls devices itself; it only reads this value.
type InputState struct {
	MoveUp    bool
	MoveDown  bool
	MoveLeft  bool
	MoveRight bool
	Reveal    bool
	PointerX  float64
	PointerY  float64
}
