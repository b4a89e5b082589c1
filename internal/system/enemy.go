// internal/system/enemy.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

// EnemySystem runs the per-enemy state machine: dead enemies drop loot
// and leave the world, live ones chase the player until their attack
// range is closed and then fire.
type EnemySystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

func NewEnemySystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService) *EnemySystem {
	return &EnemySystem{ecs: ecs, dispatcher: dispatcher, rng: rng}
}

func (s *EnemySystem) Update(playerID types.EntityID) {
	playerPos := s.ecs.Positions[playerID]
	playerBody := s.ecs.Bodies[playerID]
	if playerPos == nil || playerBody == nil {
		return
	}

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		health := s.ecs.Healths[id]
		if health != nil && health.Current <= 0 {
			s.dropLoot(id, enemy)
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
			s.ecs.RemoveEntity(id)
			continue
		}

		pos := s.ecs.Positions[id]
		body := s.ecs.Bodies[id]
		att := s.ecs.Attacks[id]
		if pos == nil || body == nil || att == nil {
			continue
		}

		// Gap is measured edge to edge, not center to center.
		gap := vec.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y) - body.Radius - playerBody.Radius
		if gap > att.Range {
			s.chase(id, pos, playerPos)
			continue
		}

		if att.Cooldown == 0 {
			angle := vec.Angle(pos.X, pos.Y, playerPos.X, playerPos.Y)
			x, y := vec.Offset(pos.X, pos.Y, angle, body.Radius)
			SpawnProjectile(s.ecs, id, x, y, angle, *att, false)
			att.Cooldown = att.CooldownMax
		} else {
			TickCooldown(att)
		}
	}
}

func (s *EnemySystem) chase(id types.EntityID, pos, playerPos *component.Position) {
	speed := s.ecs.Velocities[id].Speed
	nx, ny := vec.Toward(pos.X, pos.Y, playerPos.X, playerPos.Y, speed)
	if facing, ok := s.ecs.Facings[id]; ok && nx != pos.X {
		facing.Right = nx > pos.X
	}
	pos.X, pos.Y = nx, ny
}

// dropLoot leaves exactly one ground item at the enemy's last position:
// usually an xp drop worth 4 plus the enemy level, occasionally a
// health drop worth the level.
func (s *EnemySystem) dropLoot(id types.EntityID, enemy *component.Enemy) {
	pos := s.ecs.Positions[id]
	if pos == nil {
		return
	}
	level := 1
	if enemy != nil {
		level = enemy.Level
	}

	item := component.GroundItem{Kind: component.ItemHealth, Value: level}
	renderColor := config.HealthItemColor
	if s.rng.Chance(config.XPDropChance) {
		item = component.GroundItem{Kind: component.ItemXP, Value: config.XPDropBase + level}
		renderColor = config.XPItemColor
	}

	dropID := s.ecs.NewEntity()
	s.ecs.Positions[dropID] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.GroundItems[dropID] = &item
	s.ecs.Renderables[dropID] = &component.Renderable{Color: renderColor, Radius: 5}
}
