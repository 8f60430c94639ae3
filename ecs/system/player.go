package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

// PlayerSystem applies the tick's input to the player: movement clamped to
// the canvas, and held fire limited by the player's fire rate.
type PlayerSystem struct {
	spec *prefabs.GameSpec
	warn *warnOnce
}

func NewPlayerSystem(log *zap.Logger, spec *prefabs.GameSpec) *PlayerSystem {
	return &PlayerSystem{spec: spec, warn: newWarnOnce(log)}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	p := w.Player
	if p == nil || !p.IsAlive() {
		return
	}

	dt := w.Delta()
	ax, ay := w.Input.Axis()
	if dir := (cp.Vector{X: ax, Y: ay}); dir.LengthSq() > 0 {
		step := dir.Normalize().Mult(p.Speed * dt)
		p.X = cp.Clamp(p.X+step.X, 0, w.Canvas.Width-p.Width)
		p.Y = cp.Clamp(p.Y+step.Y, 0, w.Canvas.Height-p.Height)
	}

	if w.Input.Has(component.ActionFire) && s.spec != nil {
		fire(w, s.spec, s.warn, &p.Actor, nil, SoundShoot)
	}
}
