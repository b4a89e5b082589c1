// internal/system/player.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// PlayerSystem runs the player's movement and attack for one tick and
// accumulates XP from collected drops.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs}
	dispatcher.Subscribe(event.ItemCollected, s)
	return s
}

// Update moves the player along each pressed axis and fires when the
// attack cooldown has run out. Diagonal movement is deliberately not
// normalized; pressing two axes moves faster.
func (s *PlayerSystem) Update(playerID types.EntityID, input types.InputState, piercing bool) {
	pos, ok := s.ecs.Positions[playerID]
	if !ok {
		return
	}
	speed := s.ecs.Velocities[playerID].Speed
	if input.MoveUp {
		pos.Y -= speed
	}
	if input.MoveDown {
		pos.Y += speed
	}
	if input.MoveLeft {
		pos.X -= speed
	}
	if input.MoveRight {
		pos.X += speed
	}

	att := s.ecs.Attacks[playerID]
	if att.Cooldown == 0 {
		angle := PointerAngle(input)
		x, y := vec.Offset(pos.X, pos.Y, angle, att.Radius)
		SpawnProjectile(s.ecs, playerID, x, y, angle, *att, piercing)
		att.Cooldown = att.CooldownMax
	} else {
		TickCooldown(att)
	}
}

// UpdateFacing sets the facing from the pointer side of screen center.
// Runs once per tick as the last pipeline step, independent of movement.
func (s *PlayerSystem) UpdateFacing(playerID types.EntityID, input types.InputState) {
	if facing, ok := s.ecs.Facings[playerID]; ok {
		facing.Right = input.PointerX >= config.ScreenWidth/2
	}
}

// PointerAngle is the aim angle of the pointer relative to screen
// center, where the camera keeps the player.
func PointerAngle(input types.InputState) float64 {
	return vec.Angle(config.ScreenWidth/2, config.ScreenHeight/2, input.PointerX, input.PointerY)
}

// OnEvent adds the value of collected xp drops to the player's XP.
// The level-up check runs after the tick pipeline, not here.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.ItemCollected {
		return
	}
	item, ok := e.Data.(component.GroundItem)
	if !ok || item.Kind != component.ItemXP {
		return
	}
	for _, playerState := range s.ecs.PlayerState {
		playerState.CurrentXP += item.Value
		break
	}
}
