// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TickRate     = 60

	// Player base stats. Upgrades modify these through the derived-stat
	// computation; the base values themselves are never mutated.
	PlayerHealth          = 100
	PlayerSpeed           = 2.0
	PlayerRadius          = 16.0
	PlayerDamage          = 5
	PlayerAttackCooldown  = 30
	PlayerAttackRange     = 400.0
	PlayerAttackRadius    = 8.0
	PlayerProjectileSpeed = 8.0

	// Enemy spawning. One enemy per interval, placed on a circle around
	// the player. There is no population cap.
	SpawnIntervalTicks = 100
	SpawnDistance      = 600.0

	// Combat tuning.
	PierceRehitTicks      = 300
	EnemyProjectileDamage = 1
	MinAttackCooldown     = 1
	LifeStealPerHit       = 1

	// Ground items.
	MagnetRadius    = 150.0
	MagnetSpeed     = 4.0
	XPDropChance    = 0.95
	XPDropBase      = 4
	HealthDropScale = 2

	// Upgrade selection.
	UpgradeChoices      = 3
	UniqueUpgradeChance = 0.10
	RareUpgradeChance   = 0.50

	XPPerLevel = 10
)

// CalculateXPForNextLevel returns the XP threshold for advancing past level.
func CalculateXPForNextLevel(level int) int {
	return level * XPPerLevel
}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PlayerColor      = color.RGBA{80, 180, 255, 255}
	ProjectileColor  = color.RGBA{255, 240, 120, 255}
	HostileShotColor = color.RGBA{255, 90, 60, 255}
	XPItemColor      = color.RGBA{80, 230, 120, 255}
	HealthItemColor  = color.RGBA{230, 60, 80, 255}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextDarkColor  = color.RGBA{20, 20, 30, 255}

	HealthBarFill    = color.RGBA{200, 50, 60, 255}
	HealthBarBack    = color.RGBA{50, 20, 25, 255}
	XPBarFill        = color.RGBA{70, 100, 120, 220}
	PanelBackColor   = color.RGBA{30, 30, 45, 235}
	PanelStrokeColor = color.RGBA{240, 240, 240, 255}

	CommonColor = color.RGBA{180, 180, 180, 255}
	RareColor   = color.RGBA{80, 140, 255, 255}
	UniqueColor = color.RGBA{255, 170, 40, 255}
)
