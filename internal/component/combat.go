package component

// Health tracks current and maximum hit points. Current never exceeds
// Max after a tick completes.
type Health struct {
	Current int
	Max     int
}

// Attack describes an entity's ranged attack. Cooldown counts ticks
// until the next shot; zero means ready.
type Attack struct {
	Damage          int
	Cooldown        int
	CooldownMax     int
	Range           float64
	Radius          float64
	ProjectileSpeed float64
}

// Body — collision radius
type Body struct {
	Radius float64
}

// Stats is the full stat block used when deriving the player's effective
// values from accumulated upgrades. It is a plain value; deriving never
// mutates the stored base.
type Stats struct {
	Level  int
	Health Health
	Speed  float64
	Radius float64
	Attack Attack
}
