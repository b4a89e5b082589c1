// internal/component/player.go
package component

// PlayerStateComponent holds player-specific progression state:
// current level, accumulated XP and the threshold for the next level.
type PlayerStateComponent struct {
	Level         int
	CurrentXP     int
	XPToNextLevel int
}
