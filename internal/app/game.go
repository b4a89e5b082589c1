// internal/app/game.go
package app

import (
	"log"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// Game owns the authoritative world state and runs the fixed-order tick
// pipeline. Everything outside this package only reads the ECS or calls
// SelectUpgrade.
type Game struct {
	ECS      *entity.ECS
	PlayerID types.EntityID

	// BaseStats never changes after creation; effective values are
	// derived from it and the upgrade state every tick.
	BaseStats    component.Stats
	UpgradeState map[string]int

	// PendingSelection holds the offered upgrade ids while a level-up
	// choice is open. A non-empty list freezes the whole pipeline.
	PendingSelection []string
	chosen           map[string]bool

	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	SpawnSystem      *system.SpawnSystem
	GroundItemSystem *system.GroundItemSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	KillCount int
}

// NewGame initializes a new game instance. A zero seed gives a random
// run; any other seed replays deterministically.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS: ecs,
		BaseStats: component.Stats{
			Level:  1,
			Health: component.Health{Current: config.PlayerHealth, Max: config.PlayerHealth},
			Speed:  config.PlayerSpeed,
			Radius: config.PlayerRadius,
			Attack: component.Attack{
				Damage:          config.PlayerDamage,
				CooldownMax:     config.PlayerAttackCooldown,
				Range:           config.PlayerAttackRange,
				Radius:          config.PlayerAttackRadius,
				ProjectileSpeed: config.PlayerProjectileSpeed,
			},
		},
		UpgradeState:     make(map[string]int),
		chosen:           make(map[string]bool),
		PlayerSystem:     system.NewPlayerSystem(ecs, dispatcher),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		EventDispatcher:  dispatcher,
		Rng:              rng,
	}
	g.EnemySystem = system.NewEnemySystem(ecs, dispatcher, rng)
	g.SpawnSystem = system.NewSpawnSystem(ecs, rng)
	g.GroundItemSystem = system.NewGroundItemSystem(ecs, dispatcher)

	dispatcher.Subscribe(event.EnemyKilled, g)

	g.createPlayerEntity()
	return g
}

func (g *Game) createPlayerEntity() {
	id := g.ECS.NewEntity()
	g.PlayerID = id
	base := g.BaseStats
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Velocities[id] = &component.Velocity{Speed: base.Speed}
	g.ECS.Facings[id] = &component.Facing{Right: true}
	g.ECS.Healths[id] = &component.Health{Current: base.Health.Current, Max: base.Health.Max}
	g.ECS.Bodies[id] = &component.Body{Radius: base.Radius}
	att := base.Attack
	g.ECS.Attacks[id] = &att
	g.ECS.PlayerState[id] = &component.PlayerStateComponent{
		Level:         base.Level,
		XPToNextLevel: config.CalculateXPForNextLevel(base.Level),
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Radius: float32(base.Radius),
		Sprite: "player",
	}
}

// Update advances the simulation by exactly one tick. While an upgrade
// selection is pending, or after game over, the world stays frozen.
func (g *Game) Update(input types.InputState) {
	if len(g.PendingSelection) > 0 || g.ECS.GameState.Phase != component.PhasePlaying {
		return
	}
	g.ECS.Tick++

	eff := system.EffectiveStats(g.playerStats(), g.UpgradeState)
	g.applyEffectiveStats(eff)

	g.PlayerSystem.Update(g.PlayerID, input, system.HasUpgrade(g.UpgradeState, "piercing"))
	g.ProjectileSystem.Update(g.PlayerID, system.HasUpgrade(g.UpgradeState, "life_steal"))
	g.EnemySystem.Update(g.PlayerID)
	g.GroundItemSystem.Update(g.PlayerID)
	g.SpawnSystem.Update(g.PlayerID)

	health := g.ECS.Healths[g.PlayerID]
	if health.Current > health.Max {
		health.Current = health.Max
	}
	g.PlayerSystem.UpdateFacing(g.PlayerID, input)

	if health.Current <= 0 {
		g.ECS.GameState.Phase = component.PhaseGameOver
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		return
	}
	g.checkLevelUp()
}

// playerStats is the base stat block at the player's current level.
func (g *Game) playerStats() component.Stats {
	stats := g.BaseStats
	if state, ok := g.ECS.PlayerState[g.PlayerID]; ok {
		stats.Level = state.Level
	}
	return stats
}

// applyEffectiveStats writes the derived values onto the player entity.
// Mutable counters (current health, running cooldown) are clamped into
// the new bounds rather than reset.
func (g *Game) applyEffectiveStats(eff component.Stats) {
	id := g.PlayerID
	g.ECS.Velocities[id].Speed = eff.Speed
	g.ECS.Bodies[id].Radius = eff.Radius

	health := g.ECS.Healths[id]
	health.Max = eff.Health.Max
	if health.Current > health.Max {
		health.Current = health.Max
	}

	att := g.ECS.Attacks[id]
	att.Damage = eff.Attack.Damage
	att.CooldownMax = eff.Attack.CooldownMax
	att.Range = eff.Attack.Range
	att.Radius = eff.Attack.Radius
	att.ProjectileSpeed = eff.Attack.ProjectileSpeed
	if att.Cooldown > att.CooldownMax {
		att.Cooldown = att.CooldownMax
	}
}

// checkLevelUp advances the player level once accumulated XP reaches
// the threshold and opens the upgrade selection, freezing the world.
func (g *Game) checkLevelUp() {
	state := g.ECS.PlayerState[g.PlayerID]
	if state == nil || state.CurrentXP < state.XPToNextLevel {
		return
	}
	state.Level++
	state.CurrentXP = 0
	state.XPToNextLevel = config.CalculateXPForNextLevel(state.Level)

	g.PendingSelection = g.rollUpgradeChoices()
	if len(g.PendingSelection) > 0 {
		g.ECS.GameState.Phase = component.PhaseLevelUp
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerLeveledUp, Data: state.Level})
}

// rollUpgradeChoices builds the eligible set under the rarity gates and
// draws three distinct ids from it. Uniques must never have been chosen
// and pass a fresh 10% roll; rares pass a 50% roll; commons are out
// only once a level cap is reached. When the gates leave fewer than
// three entries, capless commons top the set up so the draw always
// terminates.
func (g *Game) rollUpgradeChoices() []string {
	var eligible []string
	for _, id := range defs.SortedUpgradeIDs() {
		def := defs.UpgradeLibrary[id]
		switch def.Rarity {
		case defs.RarityUnique:
			if !g.chosen[id] && g.Rng.Chance(config.UniqueUpgradeChance) {
				eligible = append(eligible, id)
			}
		case defs.RarityRare:
			if g.levelCapOpen(def) && g.Rng.Chance(config.RareUpgradeChance) {
				eligible = append(eligible, id)
			}
		default:
			if !g.chosen[id] || g.levelCapOpen(def) {
				eligible = append(eligible, id)
			}
		}
	}

	if len(eligible) < config.UpgradeChoices {
		eligible = g.padWithCommons(eligible)
	}
	if len(eligible) < config.UpgradeChoices {
		// Catalog too small to offer a full prompt; never loop forever.
		log.Printf("upgrade roll: only %d eligible upgrades", len(eligible))
		return eligible
	}

	picked := make(map[string]bool, config.UpgradeChoices)
	choices := make([]string, 0, config.UpgradeChoices)
	for len(choices) < config.UpgradeChoices {
		id := eligible[g.Rng.Intn(len(eligible))]
		if picked[id] {
			continue
		}
		picked[id] = true
		choices = append(choices, id)
	}
	return choices
}

func (g *Game) levelCapOpen(def defs.UpgradeDefinition) bool {
	return def.MaxLevel == 0 || g.UpgradeState[def.ID] < def.MaxLevel
}

// padWithCommons extends an undersized eligible set with repeatable
// commons, in catalog order, skipping ids already present.
func (g *Game) padWithCommons(eligible []string) []string {
	present := make(map[string]bool, len(eligible))
	for _, id := range eligible {
		present[id] = true
	}
	for _, id := range defs.SortedUpgradeIDs() {
		if len(eligible) >= config.UpgradeChoices {
			break
		}
		def := defs.UpgradeLibrary[id]
		if def.Rarity != defs.RarityCommon || present[id] || !g.levelCapOpen(def) {
			continue
		}
		eligible = append(eligible, id)
		present[id] = true
	}
	return eligible
}

// SelectUpgrade resolves the pending choice. Ids outside the offered
// list, or calls while no selection is open, are ignored.
func (g *Game) SelectUpgrade(id string) {
	if len(g.PendingSelection) == 0 {
		return
	}
	offered := false
	for _, candidate := range g.PendingSelection {
		if candidate == id {
			offered = true
			break
		}
	}
	if !offered {
		log.Printf("select upgrade: %q is not in the pending selection", id)
		return
	}

	g.UpgradeState[id]++
	g.chosen[id] = true
	g.PendingSelection = nil
	g.ECS.GameState.Phase = component.PhasePlaying
	g.EventDispatcher.Dispatch(event.Event{Type: event.UpgradeChosen, Data: id})
}

// OnEvent keeps the kill counter for the HUD.
func (g *Game) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		g.KillCount++
	}
}

// EffectivePlayerStats exposes the derived stat block to the UI.
func (g *Game) EffectivePlayerStats() component.Stats {
	return system.EffectiveStats(g.playerStats(), g.UpgradeState)
}

// IsGameOver reports whether the player has died.
func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.Phase == component.PhaseGameOver
}
