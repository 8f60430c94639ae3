package component

// Actor is a mobile, damageable enemy created from an actor type.
type Actor struct {
	Base
	Health
	Motion

	Kind       string
	Faction    Faction
	Score      int
	FireRate   float64
	Projectile string

	SpawnedAt float64
	LastShot  float64
}

func (a *Actor) TakeDamage(amount float64) bool {
	return a.Health.ApplyDamage(amount)
}

// FireInterval is the cooldown between shots in seconds, or 0 when the actor
// never fires.
func (a *Actor) FireInterval() float64 {
	if a.FireRate <= 0 {
		return 0
	}
	return 1 / a.FireRate
}

// ReadyToFire reports whether the cooldown has elapsed at now. At least one
// tick must pass between shots even with a zero-length cooldown.
func (a *Actor) ReadyToFire(now float64) bool {
	if a.FireRate <= 0 {
		return false
	}
	since := now - a.LastShot
	return since > 0 && since >= a.FireInterval()
}
