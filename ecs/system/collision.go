package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/prefabs"
)

// CollisionSystem resolves overlaps once per tick, in a fixed order: player
// shots against enemies, enemy shots against the player, then enemies
// touching the player. Anything marked by an earlier pass is skipped by the
// later ones.
type CollisionSystem struct {
	spec *prefabs.GameSpec
}

func NewCollisionSystem(spec *prefabs.GameSpec) *CollisionSystem {
	return &CollisionSystem{spec: spec}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	s.playerShots(w)
	s.enemyShots(w)
	s.contacts(w)
}

func (s *CollisionSystem) playerShots(w *ecs.World) {
	enemies := w.Enemies.Items()
	for _, shot := range w.PlayerShots.Items() {
		if shot.MarkedForDeletion {
			continue
		}
		for _, a := range enemies {
			if a.MarkedForDeletion || !a.IsAlive() || !component.Intersects(shot, a) {
				continue
			}
			shot.MarkForDeletion()
			w.Emit(ecs.EventSound, ecs.SoundEvent{Name: SoundHit})
			if a.TakeDamage(shot.Damage) {
				s.kill(w, a, false)
			}
			break
		}
	}
}

func (s *CollisionSystem) enemyShots(w *ecs.World) {
	p := w.Player
	if p == nil || !p.IsAlive() {
		return
	}
	for _, shot := range w.EnemyShots.Items() {
		if shot.MarkedForDeletion || !component.Intersects(shot, p) {
			continue
		}
		shot.MarkForDeletion()
		s.hurtPlayer(w, shot.Damage)
		if !p.IsAlive() {
			return
		}
	}
}

func (s *CollisionSystem) contacts(w *ecs.World) {
	p := w.Player
	if p == nil || !p.IsAlive() {
		return
	}
	for _, a := range w.Enemies.Items() {
		if a.MarkedForDeletion || !component.Intersects(a, p) {
			continue
		}
		damage := a.Current
		a.Current = 0
		s.kill(w, a, true)
		s.hurtPlayer(w, damage)
		if !p.IsAlive() {
			return
		}
	}
}

// kill removes a dead actor once: mark, award score for shot kills, spawn
// one explosion at its last position.
func (s *CollisionSystem) kill(w *ecs.World, a *component.Actor, byContact bool) {
	a.MarkForDeletion()
	score := 0
	if !byContact {
		score = a.Score
		w.Score += score
	}
	cx, cy := a.Center()
	var fx prefabs.ExplosionSpec
	if s.spec != nil {
		fx = s.spec.Explosion
	}
	entity.NewExplosion(w, fx, cx, cy)
	w.Emit(ecs.EventEnemyKilled, ecs.KillEvent{Kind: a.Kind, Score: score, X: cx, Y: cy, ByContact: byContact})
	w.Emit(ecs.EventSound, ecs.SoundEvent{Name: SoundExplosion})
}

func (s *CollisionSystem) hurtPlayer(w *ecs.World, damage float64) {
	p := w.Player
	applied, died := p.Hit(damage)
	if !applied {
		return
	}
	w.Emit(ecs.EventPlayerHit, ecs.HitEvent{Damage: damage, Health: p.Current})
	w.Emit(ecs.EventSound, ecs.SoundEvent{Name: SoundPlayerHit})
	if died {
		w.Emit(ecs.EventPlayerDied, nil)
	}
}
