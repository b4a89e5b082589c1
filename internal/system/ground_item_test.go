package system

import (
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
)

func addItem(ecs *entity.ECS, x, y float64, item component.GroundItem) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.GroundItems[id] = &item
	return id
}

func newItemWorld() (*entity.ECS, types.EntityID, *GroundItemSystem) {
	ecs, player := newTestWorld()
	dispatcher := event.NewDispatcher()
	// The player system accumulates XP from collected drops.
	NewPlayerSystem(ecs, dispatcher)
	return ecs, player, NewGroundItemSystem(ecs, dispatcher)
}

func TestXPItemIsMagnetized(t *testing.T) {
	ecs, player, sys := newItemWorld()

	id := addItem(ecs, 100, 0, component.GroundItem{Kind: component.ItemXP, Value: 5})
	sys.Update(player)

	pos := ecs.Positions[id]
	if pos.X != 96 || pos.Y != 0 {
		t.Errorf("item at (%v,%v), want pulled to (96,0)", pos.X, pos.Y)
	}
}

func TestXPItemOutsideMagnetRadiusStays(t *testing.T) {
	ecs, player, sys := newItemWorld()

	// Attraction radius is 150 - player radius = 134.
	id := addItem(ecs, 140, 0, component.GroundItem{Kind: component.ItemXP, Value: 5})
	sys.Update(player)

	if pos := ecs.Positions[id]; pos.X != 140 {
		t.Errorf("item at X=%v, want untouched at 140", pos.X)
	}
}

func TestXPPickupAddsValue(t *testing.T) {
	ecs, player, sys := newItemWorld()

	id := addItem(ecs, 10, 0, component.GroundItem{Kind: component.ItemXP, Value: 5})
	sys.Update(player)

	if _, alive := ecs.GroundItems[id]; alive {
		t.Error("item inside the player radius should be collected")
	}
	if got := ecs.PlayerState[player].CurrentXP; got != 5 {
		t.Errorf("player XP = %d, want 5", got)
	}
}

func TestHealthPickupHealsDouble(t *testing.T) {
	ecs, player, sys := newItemWorld()
	ecs.Healths[player].Current = 50

	addItem(ecs, 10, 0, component.GroundItem{Kind: component.ItemHealth, Value: 3})
	sys.Update(player)

	if got := ecs.Healths[player].Current; got != 56 {
		t.Errorf("player health = %d, want 56 (2x value)", got)
	}
	if got := ecs.PlayerState[player].CurrentXP; got != 0 {
		t.Errorf("health pickup changed XP to %d", got)
	}
}

func TestHealthPickupClampsAtMax(t *testing.T) {
	ecs, player, sys := newItemWorld()
	ecs.Healths[player].Current = 99

	addItem(ecs, 10, 0, component.GroundItem{Kind: component.ItemHealth, Value: 3})
	sys.Update(player)

	if got := ecs.Healths[player].Current; got != 100 {
		t.Errorf("player health = %d, want clamped to 100", got)
	}
}

func TestHealthItemNeedsDirectOverlap(t *testing.T) {
	ecs, player, sys := newItemWorld()
	ecs.Healths[player].Current = 50

	// Inside magnet range but outside the player radius: health drops
	// are not magnetized and stay put.
	id := addItem(ecs, 50, 0, component.GroundItem{Kind: component.ItemHealth, Value: 3})
	sys.Update(player)

	if _, alive := ecs.GroundItems[id]; !alive {
		t.Error("health item should not be collected at distance")
	}
	if pos := ecs.Positions[id]; pos.X != 50 {
		t.Errorf("health item moved to X=%v", pos.X)
	}
}

func TestInertKindsAreNeverConsumed(t *testing.T) {
	ecs, player, sys := newItemWorld()

	coin := addItem(ecs, 0, 0, component.GroundItem{Kind: component.ItemCoin, Value: 9})
	generic := addItem(ecs, 0, 0, component.GroundItem{Kind: component.ItemGeneric, Payload: "relic"})
	sys.Update(player)

	if _, alive := ecs.GroundItems[coin]; !alive {
		t.Error("coin kind has no consumption behavior yet")
	}
	if _, alive := ecs.GroundItems[generic]; !alive {
		t.Error("item kind has no consumption behavior yet")
	}
}
