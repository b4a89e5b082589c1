// internal/component/ground_item.go
package component

// ItemKind classifies a ground item.
type ItemKind string

const (
	ItemXP      ItemKind = "xp"
	ItemHealth  ItemKind = "health"
	ItemGeneric ItemKind = "item"
	ItemCoin    ItemKind = "coin"
)

// GroundItem is a world object awaiting pickup. Value carries the
// numeric payload for xp and health drops; Payload is an opaque string
// for the item and coin kinds, which currently have no consumption
// behavior and stay inert on the ground.
type GroundItem struct {
	Kind    ItemKind
	Value   int
	Payload string
}
