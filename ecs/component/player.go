package component

const defaultFlickerPeriod = 0.1

// Player is the controlled actor. Hits open an invulnerability window during
// which further damage is ignored.
type Player struct {
	Actor

	Invulnerable    float64
	InvulnerableFor float64
	FlickerPeriod   float64
}

// Hit applies damage unless the invulnerability window is open. It reports
// whether the damage landed and whether it was fatal.
func (p *Player) Hit(amount float64) (applied bool, died bool) {
	if p == nil || amount <= 0 || p.Invulnerable > 0 || !p.IsAlive() {
		return false, false
	}
	died = p.Health.ApplyDamage(amount)
	p.Invulnerable = p.InvulnerableFor
	return true, died
}

func (p *Player) TakeDamage(amount float64) bool {
	_, died := p.Hit(amount)
	return died
}

// Tick counts the invulnerability window down.
func (p *Player) Tick(dt float64) {
	if p.Invulnerable <= 0 {
		return
	}
	p.Invulnerable -= dt
	if p.Invulnerable < 0 {
		p.Invulnerable = 0
	}
}

// Visible drives the hit flicker: while invulnerable the player is drawn on
// alternating FlickerPeriod slices.
func (p *Player) Visible() bool {
	if p.Invulnerable <= 0 {
		return true
	}
	period := p.FlickerPeriod
	if period <= 0 {
		period = defaultFlickerPeriod
	}
	return int(p.Invulnerable/period)%2 == 0
}

func (p *Player) Render(r Renderer) {
	if !p.Visible() {
		return
	}
	p.Base.Render(r)
}
