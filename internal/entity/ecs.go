// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-survivors/internal/component"
	"go-survivors/internal/types"
)

// ECS is the authoritative mutable world state advanced by the
// orchestrator each tick. Rendering and UI only read it.
type ECS struct {
	Tick        uint64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Facings     map[types.EntityID]*component.Facing
	Healths     map[types.EntityID]*component.Health
	Attacks     map[types.EntityID]*component.Attack
	Bodies      map[types.EntityID]*component.Body
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	GroundItems map[types.EntityID]*component.GroundItem
	Renderables map[types.EntityID]*component.Renderable
	PlayerState map[types.EntityID]*component.PlayerStateComponent
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Facings:     make(map[types.EntityID]*component.Facing),
		Healths:     make(map[types.EntityID]*component.Health),
		Attacks:     make(map[types.EntityID]*component.Attack),
		Bodies:      make(map[types.EntityID]*component.Body),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		GroundItems: make(map[types.EntityID]*component.GroundItem),
		Renderables: make(map[types.EntityID]*component.Renderable),
		PlayerState: make(map[types.EntityID]*component.PlayerStateComponent),
		GameState:   &component.GameState{Phase: component.PhasePlaying},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops an entity from every component store.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Facings, id)
	delete(ecs.Healths, id)
	delete(ecs.Attacks, id)
	delete(ecs.Bodies, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.GroundItems, id)
	delete(ecs.Renderables, id)
	delete(ecs.PlayerState, id)
}

// SortedIDs returns map keys in ascending id order. Go randomizes map
// iteration; simulation loops need a stable order so simultaneous
// events resolve the same way every run.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
