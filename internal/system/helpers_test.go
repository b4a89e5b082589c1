package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
)

// newTestWorld builds an ECS with a player entity at the origin.
func newTestWorld() (*entity.ECS, types.EntityID) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Speed: 2}
	ecs.Facings[id] = &component.Facing{Right: true}
	ecs.Healths[id] = &component.Health{Current: 100, Max: 100}
	ecs.Bodies[id] = &component.Body{Radius: 16}
	ecs.Attacks[id] = &component.Attack{
		Damage:          5,
		CooldownMax:     30,
		Range:           400,
		Radius:          8,
		ProjectileSpeed: 8,
	}
	ecs.PlayerState[id] = &component.PlayerStateComponent{Level: 1, XPToNextLevel: 10}
	return ecs, id
}

// addEnemy places a basic enemy with the given position and health.
func addEnemy(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: 1.2}
	ecs.Facings[id] = &component.Facing{}
	ecs.Healths[id] = &component.Health{Current: health, Max: health}
	ecs.Bodies[id] = &component.Body{Radius: 14}
	ecs.Attacks[id] = &component.Attack{
		Damage:          4,
		CooldownMax:     90,
		Range:           40,
		Radius:          5,
		ProjectileSpeed: 4,
	}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_CRAWLER", Level: 1}
	return id
}

// addProjectile drops a projectile straight into the world.
func addProjectile(ecs *entity.ECS, caster types.EntityID, x, y float64, proj component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	proj.CasterID = caster
	proj.StartX = x
	proj.StartY = y
	if proj.Piercing && proj.HitCooldowns == nil {
		proj.HitCooldowns = make(map[types.EntityID]int)
	}
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Projectiles[id] = &proj
	return id
}
