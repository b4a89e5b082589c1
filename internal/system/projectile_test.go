package system

import (
	"testing"

	"go-survivors/internal/component"
)

func TestNonPiercingHitsOnlyFirstEnemy(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewProjectileSystem(ecs)

	first := addEnemy(ecs, 50, 0, 100)
	second := addEnemy(ecs, 60, 0, 100)
	// Speed zero keeps the projectile overlapping both enemies.
	projID := addProjectile(ecs, player, 45, 0, component.Projectile{
		Damage: 5, Speed: 0, Radius: 6, MaxRange: 1000,
	})

	sys.Update(player, false)

	if got := ecs.Healths[first].Current; got != 95 {
		t.Errorf("first enemy health = %d, want 95", got)
	}
	if got := ecs.Healths[second].Current; got != 100 {
		t.Errorf("second enemy health = %d, want 100 (untouched)", got)
	}
	if _, alive := ecs.Projectiles[projID]; alive {
		t.Error("non-piercing projectile should be consumed by the hit")
	}
}

func TestPiercingRehitWindow(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewProjectileSystem(ecs)

	enemy := addEnemy(ecs, 50, 0, 1000)
	addProjectile(ecs, player, 50, 0, component.Projectile{
		Damage: 5, Speed: 0, Radius: 6, MaxRange: 1000, Piercing: true,
	})

	sys.Update(player, false)
	if got := ecs.Healths[enemy].Current; got != 995 {
		t.Fatalf("health after first overlap = %d, want 995", got)
	}

	// The re-hit counter runs for 300 ticks; no damage inside the window.
	for i := 0; i < 299; i++ {
		sys.Update(player, false)
	}
	if got := ecs.Healths[enemy].Current; got != 995 {
		t.Errorf("health inside re-hit window = %d, want 995", got)
	}

	sys.Update(player, false)
	if got := ecs.Healths[enemy].Current; got != 990 {
		t.Errorf("health after window expired = %d, want 990", got)
	}
}

func TestPiercingHitsEveryOverlappedEnemyOnce(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewProjectileSystem(ecs)

	first := addEnemy(ecs, 50, 0, 100)
	second := addEnemy(ecs, 60, 0, 100)
	projID := addProjectile(ecs, player, 55, 0, component.Projectile{
		Damage: 5, Speed: 0, Radius: 6, MaxRange: 1000, Piercing: true,
	})

	sys.Update(player, false)

	if got := ecs.Healths[first].Current; got != 95 {
		t.Errorf("first enemy health = %d, want 95", got)
	}
	if got := ecs.Healths[second].Current; got != 95 {
		t.Errorf("second enemy health = %d, want 95", got)
	}
	if _, alive := ecs.Projectiles[projID]; !alive {
		t.Error("piercing projectile should survive its hits")
	}
}

func TestEnemyProjectileDealsFixedDamage(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewProjectileSystem(ecs)

	enemy := addEnemy(ecs, 300, 0, 100)
	// Damage on the projectile is 8, but player hits are always 1.
	projID := addProjectile(ecs, enemy, 10, 0, component.Projectile{
		Damage: 8, Speed: 0, Radius: 5, MaxRange: 1000,
	})

	sys.Update(player, false)

	if got := ecs.Healths[player].Current; got != 99 {
		t.Errorf("player health = %d, want 99", got)
	}
	if _, alive := ecs.Projectiles[projID]; alive {
		t.Error("enemy projectile should despawn on hitting the player")
	}
}

func TestProjectileRangeExpiry(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewProjectileSystem(ecs)

	projID := addProjectile(ecs, player, 100, 100, component.Projectile{
		Damage: 5, Speed: 10, Radius: 6, MaxRange: 25, Direction: 0,
	})

	sys.Update(player, false)
	sys.Update(player, false)
	if _, alive := ecs.Projectiles[projID]; !alive {
		t.Fatal("projectile expired before reaching max range")
	}

	sys.Update(player, false)
	if _, alive := ecs.Projectiles[projID]; alive {
		t.Error("projectile should expire once travel reaches max range")
	}
}

func TestLifeStealHealsPerHit(t *testing.T) {
	ecs, player := newTestWorld()
	sys := NewProjectileSystem(ecs)
	ecs.Healths[player].Current = 50

	addEnemy(ecs, 50, 0, 100)
	addEnemy(ecs, 60, 0, 100)
	addProjectile(ecs, player, 55, 0, component.Projectile{
		Damage: 5, Speed: 0, Radius: 6, MaxRange: 1000, Piercing: true,
	})

	sys.Update(player, true)

	// Two pierced targets heal independently.
	if got := ecs.Healths[player].Current; got != 52 {
		t.Errorf("player health = %d, want 52", got)
	}
}
