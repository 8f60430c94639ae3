package entity

import (
	"math/rand"

	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// ResolveStart turns a start rule into a top-left position for a box of size
// w x h on the current canvas.
func ResolveStart(rule prefabs.StartRule, canvas component.Canvas, w, h float64, rng *rand.Rand) (float64, float64) {
	maxY := canvas.Height - h
	if maxY < 0 {
		maxY = 0
	}
	switch rule.Kind {
	case prefabs.StartLiteral:
		return rule.X, rule.Y
	case prefabs.StartRandom:
		maxX := canvas.Width - w
		if maxX < 0 {
			maxX = 0
		}
		return between(rng, 0, maxX), between(rng, 0, maxY)
	case prefabs.StartTop:
		return canvas.Width, 0
	case prefabs.StartBottom:
		return canvas.Width, maxY
	default:
		return canvas.Width, between(rng, 0, maxY)
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo || rng == nil {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
