// internal/system/spawn.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

// SpawnSystem is the sole source of new enemies: one spawn on every
// 100th tick, on a circle around the player.
type SpawnSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng}
}

func (s *SpawnSystem) Update(playerID types.EntityID) {
	if s.ecs.Tick%config.SpawnIntervalTicks != 0 {
		return
	}
	playerPos := s.ecs.Positions[playerID]
	playerState := s.ecs.PlayerState[playerID]
	if playerPos == nil || playerState == nil {
		return
	}

	angle := s.rng.Float64() * 2 * math.Pi
	x, y := vec.Offset(playerPos.X, playerPos.Y, angle, config.SpawnDistance)

	level := playerState.Level + s.rng.Intn(3) - 1
	if level < 1 {
		level = 1
	}
	s.SpawnEnemy(x, y, level)
}

// SpawnEnemy creates one enemy of the rotation archetype for the level,
// with stats scaled to that level.
func (s *SpawnSystem) SpawnEnemy(x, y float64, level int) types.EntityID {
	defID := defs.ArchetypeForLevel(level)
	def := defs.EnemyLibrary[defID].AtLevel(level)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Facings[id] = &component.Facing{}
	s.ecs.Healths[id] = &component.Health{Current: def.Health, Max: def.Health}
	s.ecs.Bodies[id] = &component.Body{Radius: def.Radius}
	s.ecs.Attacks[id] = &component.Attack{
		Damage:          def.Damage,
		CooldownMax:     def.AttackCooldown,
		Range:           def.AttackRange,
		Radius:          def.AttackRadius,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	s.ecs.Enemies[id] = &component.Enemy{DefID: defID, Level: level}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Color,
		Radius: float32(def.Radius),
		Sprite: defID,
	}
	return id
}
