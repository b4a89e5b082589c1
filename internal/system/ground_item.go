// internal/system/ground_item.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// GroundItemSystem pulls xp drops toward the player and resolves
// pickups. Health drops heal on direct overlap only; the item and coin
// kinds are inert.
type GroundItemSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewGroundItemSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *GroundItemSystem {
	return &GroundItemSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *GroundItemSystem) Update(playerID types.EntityID) {
	playerPos := s.ecs.Positions[playerID]
	playerBody := s.ecs.Bodies[playerID]
	if playerPos == nil || playerBody == nil {
		return
	}

	for _, id := range entity.SortedIDs(s.ecs.GroundItems) {
		item := s.ecs.GroundItems[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		switch item.Kind {
		case component.ItemXP:
			if vec.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y) <= config.MagnetRadius-playerBody.Radius {
				pos.X, pos.Y = vec.Toward(pos.X, pos.Y, playerPos.X, playerPos.Y, config.MagnetSpeed)
			}
			if vec.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y) <= playerBody.Radius {
				s.collect(id, *item)
			}
		case component.ItemHealth:
			if vec.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y) <= playerBody.Radius {
				Heal(s.ecs, playerID, config.HealthDropScale*item.Value)
				s.collect(id, *item)
			}
		}
	}
}

func (s *GroundItemSystem) collect(id types.EntityID, item component.GroundItem) {
	s.ecs.RemoveEntity(id)
	s.dispatcher.Dispatch(event.Event{Type: event.ItemCollected, Data: item})
}
