package component

// Projectile moves at a fixed velocity until it leaves the canvas or hits an
// actor of the opposite faction.
type Projectile struct {
	Base

	VX      float64
	VY      float64
	Damage  float64
	Faction Faction
}

func (p *Projectile) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// OutOfBounds reports whether the projectile is entirely off the canvas.
func (p *Projectile) OutOfBounds(c Canvas) bool {
	return p.X < -p.Width || p.X > c.Width || p.Y < -p.Height || p.Y > c.Height
}
