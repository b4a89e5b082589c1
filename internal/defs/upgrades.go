// internal/defs/upgrades.go
package defs

import (
	"sort"
	"strconv"
	"strings"
)

// UpgradeDefinition holds all the static data for one upgrade in the
// catalog. Description may contain {key} placeholders resolved against
// Values for display; the substitution has no effect on simulation.
// Immutable after program start.
type UpgradeDefinition struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	// MaxLevel caps how often a common upgrade can be taken; zero
	// means no cap.
	MaxLevel int
	Values   map[string]float64
}

// UpgradeLibrary is the catalog of all upgrade definitions, keyed by ID.
var UpgradeLibrary = map[string]UpgradeDefinition{
	"damage": {
		ID:          "damage",
		Name:        "Sharpened Bolts",
		Description: "Projectiles deal {damage} more damage.",
		Rarity:      RarityCommon,
		Values:      map[string]float64{"damage": 2},
	},
	"attack_speed": {
		ID:          "attack_speed",
		Name:        "Rapid Fire",
		Description: "Attack cooldown shortened by {speed} ticks.",
		Rarity:      RarityCommon,
		MaxLevel:    10,
		Values:      map[string]float64{"speed": 2},
	},
	"health": {
		ID:          "health",
		Name:        "Vitality",
		Description: "Maximum health raised by {health}.",
		Rarity:      RarityCommon,
		Values:      map[string]float64{"health": 10},
	},
	"move_speed": {
		ID:          "move_speed",
		Name:        "Fleet Footed",
		Description: "Movement speed raised by {speed}%.",
		Rarity:      RarityCommon,
		Values:      map[string]float64{"speed": 10},
	},
	"radius": {
		ID:          "radius",
		Name:        "Heavy Bolts",
		Description: "Projectile radius grows by {radius}.",
		Rarity:      RarityCommon,
		MaxLevel:    8,
		Values:      map[string]float64{"radius": 2},
	},
	"life_steal": {
		ID:          "life_steal",
		Name:        "Leeching",
		Description: "Every projectile hit restores {heal} health.",
		Rarity:      RarityRare,
		MaxLevel:    1,
		Values:      map[string]float64{"heal": 1},
	},
	"piercing": {
		ID:          "piercing",
		Name:        "Piercing Bolts",
		Description: "Projectiles pass through enemies.",
		Rarity:      RarityUnique,
		MaxLevel:    1,
	},
}

// SortedUpgradeIDs returns the catalog keys in a stable order.
func SortedUpgradeIDs() []string {
	ids := make([]string, 0, len(UpgradeLibrary))
	for id := range UpgradeLibrary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FormatDescription resolves {key} placeholders in the definition's
// description against its value table. Unknown placeholders are left
// in place.
func FormatDescription(def UpgradeDefinition) string {
	if len(def.Values) == 0 {
		return def.Description
	}
	pairs := make([]string, 0, len(def.Values)*2)
	for key, value := range def.Values {
		pairs = append(pairs, "{"+key+"}", strconv.FormatFloat(value, 'f', -1, 64))
	}
	return strings.NewReplacer(pairs...).Replace(def.Description)
}
