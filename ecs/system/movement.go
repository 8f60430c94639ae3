package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"go.uber.org/zap"
)

// MovementSystem moves every enemy by its pattern and drops the ones that
// have left the canvas on the left.
type MovementSystem struct {
	scripts *ScriptRunner
	warn    *warnOnce
}

func NewMovementSystem(log *zap.Logger, scripts *ScriptRunner) *MovementSystem {
	if scripts == nil {
		scripts = NewScriptRunner(nil)
	}
	return &MovementSystem{scripts: scripts, warn: newWarnOnce(log)}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	dt := w.Delta()
	now := w.Time()
	w.Enemies.Each(func(a *component.Actor) {
		if a.MarkedForDeletion {
			return
		}
		s.move(w, a, now, dt)
		if a.X+a.Width < 0 {
			a.MarkForDeletion()
		}
	})
}

func (s *MovementSystem) move(w *ecs.World, a *component.Actor, now, dt float64) {
	forward := a.Faction.Forward()
	switch a.Pattern {
	case component.PatternSine:
		a.X += forward * a.Speed * dt
		a.Y = a.InitialY + a.Amplitude*math.Sin(now*a.Frequency+a.Phase)
	case component.PatternDiagonal:
		a.X += forward * a.Speed * dt
		a.Y += a.VerticalDir * a.Speed * a.Damping * dt
		bottom := w.Canvas.Height - a.Height
		if a.Y <= 0 {
			a.Y = 0
			a.VerticalDir = 1
		} else if a.Y >= bottom {
			a.Y = bottom
			a.VerticalDir = -1
		}
	case component.PatternScript:
		dx, dy, err := s.scripts.Move(a.Script, ScriptInput{
			T: now, DT: dt,
			X: a.X, Y: a.Y,
			Speed: a.Speed, Phase: a.Phase,
			InitialY: a.InitialY,
			CanvasW:  w.Canvas.Width, CanvasH: w.Canvas.Height,
		})
		if err != nil {
			s.warn.warn("script:"+a.Script, "movement: script failed, moving straight",
				zap.String("actor", a.Kind), zap.Error(err))
			a.X += forward * a.Speed * dt
			return
		}
		a.X += dx
		a.Y += dy
	default:
		a.X += forward * a.Speed * dt
	}
}
