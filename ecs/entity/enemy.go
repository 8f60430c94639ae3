package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

const (
	defaultAmplitude = 50
	defaultFrequency = 2
	defaultDamping   = 1
)

// NewEnemy builds an actor of the given kind at its resolved start position
// and registers it with the world.
func NewEnemy(w *ecs.World, kind string, spec prefabs.ActorSpec, start prefabs.StartRule) (*component.Actor, error) {
	if w == nil {
		return nil, fmt.Errorf("enemy: world is nil")
	}
	pattern, ok := component.ParsePattern(spec.Pattern)
	if !ok {
		return nil, fmt.Errorf("enemy %q: %w %q", kind, prefabs.ErrUnknownPattern, spec.Pattern)
	}

	x, y := ResolveStart(start, w.Canvas, spec.Width, spec.Height, w.Rand)
	motion := component.Motion{
		Pattern:     pattern,
		Speed:       spec.Speed,
		Amplitude:   orDefault(spec.Amplitude, defaultAmplitude),
		Frequency:   orDefault(spec.Frequency, defaultFrequency),
		Damping:     orDefault(spec.Damping, defaultDamping),
		Script:      spec.Script,
		InitialY:    y,
		Phase:       w.Rand.Float64() * 2 * math.Pi,
		VerticalDir: 1,
	}
	if w.Rand.Intn(2) == 0 {
		motion.VerticalDir = -1
	}

	actor := &component.Actor{
		Base: component.Base{
			X:      x,
			Y:      y,
			Width:  spec.Width,
			Height: spec.Height,
			Sprite: spriteOr(spec.Sprite, kind),
		},
		Health:     component.NewHealth(spec.Health),
		Motion:     motion,
		Kind:       kind,
		Faction:    component.FactionEnemy,
		Score:      spec.Score,
		FireRate:   spec.FireRate,
		Projectile: spec.Projectile,
	}
	w.SpawnEnemy(actor)
	return actor, nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func spriteOr(sprite, fallback string) string {
	if sprite == "" {
		return fallback
	}
	return sprite
}
