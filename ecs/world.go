package ecs

import (
	"math/rand"

	"github.com/milk9111/arcade/ecs/component"
)

// World is the simulation context: it owns every live entity, grouped into
// one ordered collection per category, plus the clock, score and the event
// queue the systems report through. Nothing outside the world mutates
// collection membership.
type World struct {
	entities  entityStore
	scheduler *Scheduler
	events    EventQueue

	Canvas component.Canvas
	Rand   *rand.Rand

	Player      *component.Player
	Enemies     Collection[*component.Actor]
	PlayerShots Collection[*component.Projectile]
	EnemyShots  Collection[*component.Projectile]
	Effects     Collection[*component.Effect]

	// Input is the action snapshot for the current tick.
	Input component.Actions
	Score int

	time  float64
	delta float64
}

// NewWorld creates an empty world. A nil rng gets a fixed seed.
func NewWorld(canvas component.Canvas, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{
		scheduler: NewScheduler(),
		Canvas:    canvas,
		Rand:      rng,
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Time is the simulated seconds since the last Reset.
func (w *World) Time() float64 {
	return w.time
}

// Delta is the length of the tick being simulated, in seconds.
func (w *World) Delta() float64 {
	return w.delta
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit pushes an event onto the world queue.
func (w *World) Emit(t EventType, data any) {
	w.events.Push(Event{Type: t, Data: data})
}

// IsAlive reports whether an entity handle still refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) register(b *component.Base) Entity {
	e := w.entities.create()
	b.ID = uint64(e)
	b.MarkedForDeletion = false
	return e
}

func (w *World) release(b *component.Base) {
	w.entities.destroy(Entity(b.ID))
}

// SpawnEnemy registers an actor. Its fire cooldown starts now.
func (w *World) SpawnEnemy(a *component.Actor) Entity {
	if a == nil {
		return 0
	}
	e := w.register(&a.Base)
	a.SpawnedAt = w.time
	a.LastShot = w.time
	w.Enemies.add(a)
	return e
}

// SpawnProjectile registers a projectile in its faction's collection.
func (w *World) SpawnProjectile(p *component.Projectile) Entity {
	if p == nil {
		return 0
	}
	e := w.register(&p.Base)
	if p.Faction == component.FactionPlayer {
		w.PlayerShots.add(p)
	} else {
		w.EnemyShots.add(p)
	}
	return e
}

// SpawnEffect registers a timed effect.
func (w *World) SpawnEffect(fx *component.Effect) Entity {
	if fx == nil {
		return 0
	}
	e := w.register(&fx.Base)
	w.Effects.add(fx)
	return e
}

// SetPlayer replaces the player entity. Unlike enemies the player starts
// with its cooldown already spent.
func (w *World) SetPlayer(p *component.Player) Entity {
	if w.Player != nil {
		w.release(&w.Player.Base)
	}
	w.Player = p
	if p == nil {
		return 0
	}
	e := w.register(&p.Base)
	p.SpawnedAt = w.time
	// held fire shoots on the first tick
	p.LastShot = w.time - p.FireInterval()
	return e
}

// Update advances the clock by dt and runs every system once. dt is used as
// given; clamping is the host's decision.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.delta = dt
	w.time += dt
	w.scheduler.Update(w)
}

// Compact removes every entity marked for deletion from every category,
// keeping the survivors' order. It returns the number removed.
func (w *World) Compact() int {
	if w == nil {
		return 0
	}
	removed := w.Enemies.compact(func(a *component.Actor) { w.release(&a.Base) })
	removed += w.PlayerShots.compact(func(p *component.Projectile) { w.release(&p.Base) })
	removed += w.EnemyShots.compact(func(p *component.Projectile) { w.release(&p.Base) })
	removed += w.Effects.compact(func(fx *component.Effect) { w.release(&fx.Base) })
	return removed
}

// Step runs one full tick: Update followed by Compact.
func (w *World) Step(dt float64) {
	w.Update(dt)
	w.Compact()
}

// Reset clears every category, the player, the clock, the score and any
// undrained events.
func (w *World) Reset() {
	if w == nil {
		return
	}
	w.Enemies.clear(func(a *component.Actor) { w.release(&a.Base) })
	w.PlayerShots.clear(func(p *component.Projectile) { w.release(&p.Base) })
	w.EnemyShots.clear(func(p *component.Projectile) { w.release(&p.Base) })
	w.Effects.clear(func(fx *component.Effect) { w.release(&fx.Base) })
	if w.Player != nil {
		w.release(&w.Player.Base)
		w.Player = nil
	}
	w.events.flush()
	w.Input = 0
	w.Score = 0
	w.time = 0
	w.delta = 0
}

// Counts is a per-category size snapshot.
type Counts struct {
	Enemies     int
	PlayerShots int
	EnemyShots  int
	Effects     int
	Live        int
}

func (w *World) Counts() Counts {
	return Counts{
		Enemies:     w.Enemies.Len(),
		PlayerShots: w.PlayerShots.Len(),
		EnemyShots:  w.EnemyShots.Len(),
		Effects:     w.Effects.Len(),
		Live:        w.entities.live,
	}
}
