package system

import (
	"testing"

	"github.com/milk9111/arcade/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestProjectileLeavesCanvas(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		vx, vy float64
		gone   bool
	}{
		{"inside", 400, 300, 100, 0, false},
		{"past_right", 795, 300, 100, 0, true},
		{"past_left", -5, 300, -100, 0, true},
		{"partly_left", -3, 300, 0, 0, false},
		{"past_top", 400, -5, 0, -100, true},
		{"past_bottom", 400, 599, 0, 100, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld()
			w.AddSystem(NewProjectileSystem())
			p := &component.Projectile{Base: component.Base{X: c.x, Y: c.y, Width: 4, Height: 4}, VX: c.vx, VY: c.vy, Faction: component.FactionPlayer}
			w.SpawnProjectile(p)

			w.Update(0.1)
			assert.Equal(t, c.gone, p.MarkedForDeletion)
			w.Compact()
			if c.gone {
				assert.Zero(t, w.PlayerShots.Len())
			}
		})
	}
}

func TestEffectExpires(t *testing.T) {
	w := newWorld()
	w.AddSystem(NewTTLSystem())
	fx := &component.Effect{TTL: 0.5}
	w.SpawnEffect(fx)

	w.Step(0.3)
	assert.Equal(t, 1, w.Effects.Len())
	w.Step(0.3)
	assert.Zero(t, w.Effects.Len())
}
