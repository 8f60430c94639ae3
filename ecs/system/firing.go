package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

const (
	SoundShoot      = "shoot"
	SoundEnemyShoot = "enemyShoot"
	SoundHit        = "hit"
	SoundExplosion  = "explosion"
	SoundPlayerHit  = "playerHit"
)

// FiringSystem fires every enemy whose cooldown has elapsed. Aimed
// projectile types fly at the player's center; the rest fly forward.
type FiringSystem struct {
	spec *prefabs.GameSpec
	warn *warnOnce
}

func NewFiringSystem(log *zap.Logger, spec *prefabs.GameSpec) *FiringSystem {
	return &FiringSystem{spec: spec, warn: newWarnOnce(log)}
}

func (s *FiringSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.spec == nil {
		return
	}
	var target *component.Player
	if w.Player != nil && w.Player.IsAlive() {
		target = w.Player
	}
	w.Enemies.Each(func(a *component.Actor) {
		if a.MarkedForDeletion || !a.IsAlive() {
			return
		}
		fire(w, s.spec, s.warn, a, target, SoundEnemyShoot)
	})
}

// fire shoots once if the shooter's cooldown has elapsed. It reports whether
// a projectile was created.
func fire(w *ecs.World, spec *prefabs.GameSpec, warn *warnOnce, shooter *component.Actor, target *component.Player, sound string) bool {
	now := w.Time()
	if !shooter.ReadyToFire(now) {
		return false
	}
	ps, ok := spec.Projectiles[shooter.Projectile]
	if !ok {
		warn.warn("projectile:"+shooter.Projectile, "fire: unknown projectile type, skipping",
			zap.String("projectile", shooter.Projectile), zap.String("actor", shooter.Kind))
		// the cooldown is spent even though nothing fires
		shooter.LastShot = now
		return false
	}

	mx, my := muzzle(shooter)
	forward := shooter.Faction.Forward()
	var vx, vy float64
	if ps.Aimed && target != nil {
		tx, ty := target.Center()
		vx, vy = Aim(mx, my, tx, ty, ps.Speed, forward)
	} else {
		vx, vy = ForwardVelocity(ps.Speed, forward)
	}

	entity.NewProjectile(w, shooter.Projectile, ps, shooter.Faction, mx, my, vx, vy)
	shooter.LastShot = now
	w.Emit(ecs.EventSound, ecs.SoundEvent{Name: sound})
	return true
}
