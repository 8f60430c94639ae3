package component

// Health is the mortal capability shared by actors and the player.
// Current never exceeds Max.
type Health struct {
	Max     float64
	Current float64
}

// NewHealth creates a Health with current and max initialized.
func NewHealth(max float64) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage subtracts amount and reports whether this call took health to
// zero. Damage to an already dead entity is ignored.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}
