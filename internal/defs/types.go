// internal/defs/types.go
package defs

// Rarity buckets upgrades for the selection roll.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityUnique Rarity = "unique"
)
