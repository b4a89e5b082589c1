package system

import (
	"math"
	"testing"

	"go-survivors/internal/component"
)

func baseStats() component.Stats {
	return component.Stats{
		Level:  1,
		Health: component.Health{Current: 100, Max: 100},
		Speed:  2.0,
		Radius: 16,
		Attack: component.Attack{
			Damage:          5,
			CooldownMax:     30,
			Range:           400,
			Radius:          8,
			ProjectileSpeed: 8,
		},
	}
}

func TestEffectiveStatsModifiers(t *testing.T) {
	tests := []struct {
		name     string
		upgrades map[string]int
		check    func(t *testing.T, s component.Stats)
	}{
		{
			name:     "health adds ten per level",
			upgrades: map[string]int{"health": 1},
			check: func(t *testing.T, s component.Stats) {
				if s.Health.Max != 110 {
					t.Errorf("Health.Max = %d, want 110", s.Health.Max)
				}
			},
		},
		{
			name:     "damage adds two per level",
			upgrades: map[string]int{"damage": 3},
			check: func(t *testing.T, s component.Stats) {
				if s.Attack.Damage != 11 {
					t.Errorf("Attack.Damage = %d, want 11", s.Attack.Damage)
				}
			},
		},
		{
			name:     "move speed is percentage scaled",
			upgrades: map[string]int{"move_speed": 2},
			check: func(t *testing.T, s component.Stats) {
				if math.Abs(s.Speed-2.2) > 1e-9 {
					t.Errorf("Speed = %v, want 2.2", s.Speed)
				}
			},
		},
		{
			name:     "attack speed shortens cooldown",
			upgrades: map[string]int{"attack_speed": 4},
			check: func(t *testing.T, s component.Stats) {
				if s.Attack.CooldownMax != 22 {
					t.Errorf("CooldownMax = %d, want 22", s.Attack.CooldownMax)
				}
			},
		},
		{
			name:     "cooldown never drops below the floor",
			upgrades: map[string]int{"attack_speed": 100},
			check: func(t *testing.T, s component.Stats) {
				if s.Attack.CooldownMax != 1 {
					t.Errorf("CooldownMax = %d, want 1", s.Attack.CooldownMax)
				}
			},
		},
		{
			name:     "radius grows the attack radius",
			upgrades: map[string]int{"radius": 2},
			check: func(t *testing.T, s component.Stats) {
				if s.Attack.Radius != 12 {
					t.Errorf("Attack.Radius = %v, want 12", s.Attack.Radius)
				}
			},
		},
		{
			name:     "unknown ids are ignored",
			upgrades: map[string]int{"no_such_upgrade": 5},
			check: func(t *testing.T, s component.Stats) {
				if s != baseStats() {
					t.Errorf("stats changed by unknown upgrade: %+v", s)
				}
			},
		},
		{
			name:     "presence upgrades change no numbers",
			upgrades: map[string]int{"piercing": 1, "life_steal": 1},
			check: func(t *testing.T, s component.Stats) {
				if s != baseStats() {
					t.Errorf("stats changed by presence upgrade: %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, EffectiveStats(baseStats(), tt.upgrades))
		})
	}
}

func TestEffectiveStatsIsPure(t *testing.T) {
	base := baseStats()
	upgrades := map[string]int{"health": 2, "damage": 1}

	first := EffectiveStats(base, upgrades)
	second := EffectiveStats(base, upgrades)

	if base != baseStats() {
		t.Errorf("base stats mutated: %+v", base)
	}
	if first != second {
		t.Errorf("repeated derivation differs: %+v vs %+v", first, second)
	}
}

func TestHasUpgrade(t *testing.T) {
	upgrades := map[string]int{"piercing": 1, "stale": 0}
	if !HasUpgrade(upgrades, "piercing") {
		t.Error("piercing level 1 should count as present")
	}
	if HasUpgrade(upgrades, "stale") {
		t.Error("level 0 should not count as present")
	}
	if HasUpgrade(upgrades, "missing") {
		t.Error("absent id should not count as present")
	}
}
