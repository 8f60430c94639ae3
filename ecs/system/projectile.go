package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// ProjectileSystem advances every shot and marks the ones that left the
// canvas.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	step := func(p *component.Projectile) {
		if p.MarkedForDeletion {
			return
		}
		p.Advance(dt)
		if p.OutOfBounds(w.Canvas) {
			p.MarkForDeletion()
		}
	}
	w.PlayerShots.Each(step)
	w.EnemyShots.Each(step)
}
