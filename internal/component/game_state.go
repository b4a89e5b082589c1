package component

// Phase — top-level simulation phase
type Phase int

const (
	PhasePlaying Phase = iota
	// PhaseLevelUp freezes the world until an upgrade is chosen.
	PhaseLevelUp
	PhaseGameOver
)

// GameState — component holding the current phase
type GameState struct {
	Phase Phase
}
