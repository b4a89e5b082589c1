// internal/component/enemy.go
package component

// Enemy marks an entity as hostile and records its archetype and level.
type Enemy struct {
	DefID string
	Level int
}
