package entity

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// NewProjectile registers a shot centered on (cx, cy) moving at (vx, vy).
func NewProjectile(w *ecs.World, kind string, spec prefabs.ProjectileSpec, faction component.Faction, cx, cy, vx, vy float64) *component.Projectile {
	p := &component.Projectile{
		Base: component.Base{
			X:      cx - spec.Width/2,
			Y:      cy - spec.Height/2,
			Width:  spec.Width,
			Height: spec.Height,
			Sprite: spriteOr(spec.Sprite, kind),
		},
		VX:      vx,
		VY:      vy,
		Damage:  spec.Damage,
		Faction: faction,
	}
	w.SpawnProjectile(p)
	return p
}
