// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// The fields are the level-1 baseline; AtLevel scales them.
type EnemyDefinition struct {
	ID              string
	Name            string
	Health          int
	Speed           float64
	Damage          int
	AttackCooldown  int
	AttackRange     float64
	AttackRadius    float64
	ProjectileSpeed float64
	Radius          float64
	Color           color.RGBA
}

// EnemyRotation is the fixed spawn rotation, indexed by (level/4) mod 4.
var EnemyRotation = [4]string{
	"ENEMY_CRAWLER",
	"ENEMY_STALKER",
	"ENEMY_SPITTER",
	"ENEMY_BRUTE",
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_CRAWLER": {
		ID:              "ENEMY_CRAWLER",
		Name:            "Crawler",
		Health:          10,
		Speed:           1.2,
		Damage:          4,
		AttackCooldown:  90,
		AttackRange:     40,
		AttackRadius:    5,
		ProjectileSpeed: 4,
		Radius:          14,
		Color:           color.RGBA{160, 200, 90, 255},
	},
	"ENEMY_STALKER": {
		ID:              "ENEMY_STALKER",
		Name:            "Stalker",
		Health:          14,
		Speed:           1.6,
		Damage:          5,
		AttackCooldown:  75,
		AttackRange:     60,
		AttackRadius:    5,
		ProjectileSpeed: 5,
		Radius:          13,
		Color:           color.RGBA{120, 120, 220, 255},
	},
	"ENEMY_SPITTER": {
		ID:              "ENEMY_SPITTER",
		Name:            "Spitter",
		Health:          12,
		Speed:           1.0,
		Damage:          6,
		AttackCooldown:  60,
		AttackRange:     220,
		AttackRadius:    6,
		ProjectileSpeed: 6,
		Radius:          15,
		Color:           color.RGBA{220, 120, 200, 255},
	},
	"ENEMY_BRUTE": {
		ID:              "ENEMY_BRUTE",
		Name:            "Brute",
		Health:          24,
		Speed:           0.8,
		Damage:          8,
		AttackCooldown:  110,
		AttackRange:     50,
		AttackRadius:    8,
		ProjectileSpeed: 4,
		Radius:          20,
		Color:           color.RGBA{220, 80, 60, 255},
	},
}

// ArchetypeForLevel picks the spawn archetype for an enemy level.
func ArchetypeForLevel(level int) string {
	return EnemyRotation[(level/4)%len(EnemyRotation)]
}

// AtLevel returns the stat block scaled to the given level. Every field
// is a non-decreasing step function of level/4 or level/16, so higher
// levels are never weaker.
func (d EnemyDefinition) AtLevel(level int) EnemyDefinition {
	if level < 1 {
		level = 1
	}
	quarter := level / 4
	sixteenth := level / 16

	out := d
	out.Health += quarter * 4
	out.Damage += sixteenth
	out.Speed += float64(sixteenth) * 0.2
	out.AttackRange += float64(quarter) * 8
	out.Radius += float64(sixteenth) * 2
	return out
}
