// internal/system/utils.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
)

// ApplyDamage reduces an entity's health, never below zero. Death is
// resolved by the enemy lifecycle pass, not here.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage int) {
	health, ok := ecs.Healths[id]
	if !ok || damage <= 0 {
		return
	}
	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}
}

// Heal raises an entity's current health, never above its maximum.
func Heal(ecs *entity.ECS, id types.EntityID, amount int) {
	health, ok := ecs.Healths[id]
	if !ok || amount <= 0 {
		return
	}
	health.Current += amount
	if health.Current > health.Max {
		health.Current = health.Max
	}
}

// TickCooldown decrements an attack cooldown, keeping it in [0, max].
func TickCooldown(att *component.Attack) {
	if att.Cooldown > 0 {
		att.Cooldown--
	}
	if att.Cooldown > att.CooldownMax {
		att.Cooldown = att.CooldownMax
	}
	if att.Cooldown < 0 {
		att.Cooldown = 0
	}
}
