// internal/event/types.go
package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Data: types.EntityID of the dead enemy
	ItemCollected   EventType = "ItemCollected"   // Data: component.GroundItem
	PlayerLeveledUp EventType = "PlayerLeveledUp" // Data: new level (int)
	UpgradeChosen   EventType = "UpgradeChosen"   // Data: upgrade id (string)
	PlayerDied      EventType = "PlayerDied"
)
