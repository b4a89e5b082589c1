// internal/system/projectile.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// ProjectileSystem advances projectiles and resolves their collisions.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update runs one tick of projectile travel and hit resolution. For
// every projectile: advance along its angle, cool down per-target
// re-hit counters, resolve hits, then expire it when the distance from
// its spawn point reaches max range regardless of hit outcome.
func (s *ProjectileSystem) Update(playerID types.EntityID, lifeSteal bool) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		pos.X, pos.Y = vec.Offset(pos.X, pos.Y, proj.Direction, proj.Speed)

		for target, cooldown := range proj.HitCooldowns {
			if cooldown > 0 {
				proj.HitCooldowns[target] = cooldown - 1
			}
		}

		if proj.CasterID == playerID {
			s.resolveAgainstEnemies(id, proj, pos, playerID, lifeSteal)
		} else {
			s.resolveAgainstPlayer(id, proj, pos, playerID)
		}

		// The projectile may already be gone; range expiry still uses
		// the advanced position.
		if _, alive := s.ecs.Projectiles[id]; alive {
			if vec.Dist(proj.StartX, proj.StartY, pos.X, pos.Y) >= proj.MaxRange {
				s.ecs.RemoveEntity(id)
			}
		}
	}
}

// resolveAgainstEnemies applies a friendly projectile to every enemy it
// overlaps. A non-piercing projectile damages only the first enemy in
// iteration order and is consumed; a piercing one damages each enemy
// whose re-hit counter is not running and then locks that enemy out for
// the re-hit window.
func (s *ProjectileSystem) resolveAgainstEnemies(id types.EntityID, proj *component.Projectile, pos *component.Position, playerID types.EntityID, lifeSteal bool) {
	for _, enemyID := range entity.SortedIDs(s.ecs.Enemies) {
		enemyPos := s.ecs.Positions[enemyID]
		body := s.ecs.Bodies[enemyID]
		if enemyPos == nil || body == nil {
			continue
		}
		if vec.Dist(pos.X, pos.Y, enemyPos.X, enemyPos.Y) > body.Radius+proj.Radius {
			continue
		}

		if proj.Piercing {
			if proj.HitCooldowns == nil {
				proj.HitCooldowns = make(map[types.EntityID]int)
			}
			if proj.HitCooldowns[enemyID] > 0 {
				continue
			}
			ApplyDamage(s.ecs, enemyID, proj.Damage)
			proj.HitCooldowns[enemyID] = config.PierceRehitTicks
			if lifeSteal {
				Heal(s.ecs, playerID, config.LifeStealPerHit)
			}
			continue
		}

		ApplyDamage(s.ecs, enemyID, proj.Damage)
		if lifeSteal {
			Heal(s.ecs, playerID, config.LifeStealPerHit)
		}
		s.ecs.RemoveEntity(id)
		return
	}
}

// resolveAgainstPlayer lands a hostile projectile on the player. Enemy
// shots always deal fixed damage, never pierce, and despawn on any hit.
func (s *ProjectileSystem) resolveAgainstPlayer(id types.EntityID, proj *component.Projectile, pos *component.Position, playerID types.EntityID) {
	playerPos := s.ecs.Positions[playerID]
	body := s.ecs.Bodies[playerID]
	if playerPos == nil || body == nil {
		return
	}
	if vec.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y) > body.Radius+proj.Radius {
		return
	}
	ApplyDamage(s.ecs, playerID, config.EnemyProjectileDamage)
	s.ecs.RemoveEntity(id)
}

// SpawnProjectile creates a projectile entity at (x, y) travelling along
// angle, carrying the caster's attack values.
func SpawnProjectile(ecs *entity.ECS, caster types.EntityID, x, y, angle float64, att component.Attack, piercing bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	proj := &component.Projectile{
		CasterID:  caster,
		StartX:    x,
		StartY:    y,
		Damage:    att.Damage,
		Direction: angle,
		Speed:     att.ProjectileSpeed,
		Radius:    att.Radius,
		MaxRange:  att.Range,
		Piercing:  piercing,
	}
	if piercing {
		proj.HitCooldowns = make(map[types.EntityID]int)
	}
	ecs.Projectiles[id] = proj

	renderColor := config.ProjectileColor
	if _, hostile := ecs.Enemies[caster]; hostile {
		renderColor = config.HostileShotColor
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  renderColor,
		Radius: float32(att.Radius),
	}
	return id
}
