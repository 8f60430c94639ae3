package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

const (
	defaultInvulnerability = 1.0
	defaultFlicker         = 0.1
)

// NewPlayer builds the player and installs it in the world, replacing any
// previous one.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (*component.Player, error) {
	if w == nil {
		return nil, fmt.Errorf("player: world is nil")
	}

	p := &component.Player{
		Actor: component.Actor{
			Base: component.Base{
				X:      spec.X,
				Y:      spec.Y,
				Width:  spec.Width,
				Height: spec.Height,
				Sprite: spriteOr(spec.Sprite, "player"),
			},
			Health:     component.NewHealth(spec.Health),
			Motion:     component.Motion{Speed: spec.Speed},
			Kind:       "player",
			Faction:    component.FactionPlayer,
			FireRate:   spec.FireRate,
			Projectile: spec.Projectile,
		},
		InvulnerableFor: orDefault(spec.Invulnerability, defaultInvulnerability),
		FlickerPeriod:   orDefault(spec.Flicker, defaultFlicker),
	}
	w.SetPlayer(p)
	return p, nil
}
