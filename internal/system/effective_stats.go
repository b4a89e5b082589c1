// internal/system/effective_stats.go
package system

import (
	"log"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
)

// statModifier applies one upgrade's accumulated levels to a stat block.
// Keeping these in a table, instead of a switch over id strings, lets a
// new upgrade register its effect next to its catalog entry.
type statModifier func(s *component.Stats, level int, values map[string]float64)

var statModifiers = map[string]statModifier{
	"damage": func(s *component.Stats, level int, v map[string]float64) {
		s.Attack.Damage += level * int(v["damage"])
	},
	"attack_speed": func(s *component.Stats, level int, v map[string]float64) {
		s.Attack.CooldownMax -= level * int(v["speed"])
	},
	"health": func(s *component.Stats, level int, v map[string]float64) {
		s.Health.Max += level * int(v["health"])
	},
	"move_speed": func(s *component.Stats, level int, v map[string]float64) {
		s.Speed += float64(level) * v["speed"] / 100.0
	},
	"radius": func(s *component.Stats, level int, v map[string]float64) {
		s.Attack.Radius += float64(level) * v["radius"]
	},
}

// EffectiveStats combines base stats with every accumulated upgrade
// level and returns the result. The computation is pure: base is never
// mutated and the same inputs always produce the same output.
// Presence-gated upgrades (piercing, life steal) carry no modifier here
// and are queried with HasUpgrade instead.
func EffectiveStats(base component.Stats, upgrades map[string]int) component.Stats {
	out := base
	for id, level := range upgrades {
		if level <= 0 {
			continue
		}
		def, known := defs.UpgradeLibrary[id]
		if !known {
			// A stale id must not crash the tick.
			log.Printf("effective stats: unknown upgrade %q ignored", id)
			continue
		}
		mod, ok := statModifiers[id]
		if !ok {
			continue
		}
		mod(&out, level, def.Values)
	}
	// Clamps run after all modifiers so map iteration order cannot
	// change the result.
	if out.Attack.CooldownMax < config.MinAttackCooldown {
		out.Attack.CooldownMax = config.MinAttackCooldown
	}
	if out.Health.Current > out.Health.Max {
		out.Health.Current = out.Health.Max
	}
	return out
}

// HasUpgrade reports whether a presence-gated upgrade is active.
func HasUpgrade(upgrades map[string]int, id string) bool {
	return upgrades[id] > 0
}
