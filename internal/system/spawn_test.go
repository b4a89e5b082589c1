package system

import (
	"math"
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

func TestSpawnOnlyOnEveryHundredthTick(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewSpawnSystem(ecs, utils.NewPRNGService(1))

	for tick := uint64(1); tick <= 250; tick++ {
		ecs.Tick = tick
		sys.Update(player)

		want := int(tick / config.SpawnIntervalTicks)
		if got := len(ecs.Enemies); got != want {
			t.Fatalf("tick %d: enemies = %d, want %d", tick, got, want)
		}
	}
}

func TestSpawnPlacementAndLevel(t *testing.T) {
	ecs, player := newTestWorld()
	ecs.Positions[player].X = 1000
	ecs.Positions[player].Y = -500
	sys := NewSpawnSystem(ecs, utils.NewPRNGService(7))

	for i := 0; i < 50; i++ {
		ecs.Tick = uint64((i + 1) * config.SpawnIntervalTicks)
		sys.Update(player)
	}

	if len(ecs.Enemies) != 50 {
		t.Fatalf("enemies = %d, want 50", len(ecs.Enemies))
	}
	for id, enemy := range ecs.Enemies {
		if enemy.Level < 1 {
			t.Errorf("enemy level = %d, want >= 1", enemy.Level)
		}
		pos := ecs.Positions[id]
		d := vec.Dist(pos.X, pos.Y, 1000, -500)
		if math.Abs(d-config.SpawnDistance) > 1e-6 {
			t.Errorf("spawn distance = %v, want %v", d, config.SpawnDistance)
		}
		if ecs.Healths[id] == nil || ecs.Attacks[id] == nil || ecs.Bodies[id] == nil {
			t.Errorf("enemy %d is missing combat components", id)
		}
	}
}
