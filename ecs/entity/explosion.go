package entity

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

const defaultExplosionDuration = 0.5

// NewExplosion registers an explosion effect centered on (cx, cy).
func NewExplosion(w *ecs.World, spec prefabs.ExplosionSpec, cx, cy float64) *component.Effect {
	width := orDefault(spec.Width, 32)
	height := orDefault(spec.Height, 32)
	fx := &component.Effect{
		Base: component.Base{
			X:      cx - width/2,
			Y:      cy - height/2,
			Width:  width,
			Height: height,
			Sprite: spriteOr(spec.Sprite, "explosion"),
		},
		TTL: orDefault(spec.Duration, defaultExplosionDuration),
	}
	w.SpawnEffect(fx)
	return fx
}
