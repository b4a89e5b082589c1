// internal/component/projectile.go
package component

import "go-survivors/internal/types"

// Projectile is a moving attack spawned by the player or an enemy.
// CasterID equal to the player's id means friendly to the player and
// hostile to enemies; any other caster is hostile to the player.
type Projectile struct {
	CasterID types.EntityID
	StartX   float64
	StartY   float64
	Damage   int
	// Direction is the travel angle in radians.
	Direction float64
	Speed     float64
	Radius    float64
	MaxRange  float64
	Piercing  bool
	// HitCooldowns tracks the per-target re-hit delay of a piercing
	// projectile. Only positive entries are meaningful.
	HitCooldowns map[types.EntityID]int
}
