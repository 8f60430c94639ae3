package system

import (
	"testing"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collisionWorld() *ecs.World {
	w := newWorld()
	w.AddSystem(NewInvulnerableSystem())
	w.AddSystem(NewCollisionSystem(testSpec()))
	return w
}

func testPlayer(x, y float64) *component.Player {
	return &component.Player{
		Actor: component.Actor{
			Base:    component.Base{X: x, Y: y, Width: 20, Height: 20},
			Health:  component.NewHealth(100),
			Faction: component.FactionPlayer,
		},
		InvulnerableFor: 1,
		FlickerPeriod:   0.1,
	}
}

func TestProjectileKillsEnemyOnce(t *testing.T) {
	w := collisionWorld()
	enemy := &component.Actor{Base: component.Base{X: 100, Y: 100, Width: 20, Height: 20}, Health: component.NewHealth(10), Score: 250, Kind: "drone"}
	w.SpawnEnemy(enemy)
	w.SpawnProjectile(&component.Projectile{Base: component.Base{X: 105, Y: 105, Width: 4, Height: 4}, Damage: 10, Faction: component.FactionPlayer})
	w.SpawnProjectile(&component.Projectile{Base: component.Base{X: 110, Y: 105, Width: 4, Height: 4}, Damage: 10, Faction: component.FactionPlayer})

	w.Update(0.016)

	assert.True(t, enemy.MarkedForDeletion)
	assert.Equal(t, 250, w.Score)
	require.Equal(t, 1, w.Effects.Len())
	fx := w.Effects.Items()[0]
	cx, cy := fx.Center()
	assert.Equal(t, 110.0, cx)
	assert.Equal(t, 110.0, cy)

	events := w.Events().Drain()
	assert.Equal(t, 1, countEvents(events, ecs.EventEnemyKilled))

	shots := w.PlayerShots.Items()
	assert.True(t, shots[0].MarkedForDeletion)
	assert.False(t, shots[1].MarkedForDeletion, "second shot must not hit a dead enemy")

	w.Compact()
	w.Update(0.016)
	assert.Equal(t, 250, w.Score)
	assert.Equal(t, 1, w.Effects.Len())
}

func TestProjectileDamagesWithoutKill(t *testing.T) {
	w := collisionWorld()
	enemy := &component.Actor{Base: component.Base{X: 100, Y: 100, Width: 20, Height: 20}, Health: component.NewHealth(30), Score: 10}
	w.SpawnEnemy(enemy)
	w.SpawnProjectile(&component.Projectile{Base: component.Base{X: 105, Y: 105, Width: 4, Height: 4}, Damage: 10, Faction: component.FactionPlayer})

	w.Update(0.016)
	assert.Equal(t, 20.0, enemy.Current)
	assert.False(t, enemy.MarkedForDeletion)
	assert.Zero(t, w.Score)
	assert.Zero(t, w.Effects.Len())
}

func TestEdgeTouchIsNotAHit(t *testing.T) {
	w := collisionWorld()
	enemy := &component.Actor{Base: component.Base{X: 100, Y: 100, Width: 20, Height: 20}, Health: component.NewHealth(10)}
	w.SpawnEnemy(enemy)
	w.SpawnProjectile(&component.Projectile{Base: component.Base{X: 120, Y: 100, Width: 4, Height: 4}, Damage: 10, Faction: component.FactionPlayer})

	w.Update(0.016)
	assert.False(t, enemy.MarkedForDeletion)
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	w := collisionWorld()
	p := testPlayer(300, 300)
	w.SetPlayer(p)

	shoot := func() {
		w.SpawnProjectile(&component.Projectile{Base: component.Base{X: 305, Y: 305, Width: 4, Height: 4}, Damage: 30, Faction: component.FactionEnemy})
	}

	shoot()
	w.Step(0)
	assert.Equal(t, 70.0, p.Current)
	assert.InDelta(t, 1.0, p.Invulnerable, 1e-9)

	w.Step(0.2)
	shoot()
	w.Step(0)
	assert.Equal(t, 70.0, p.Current, "hit inside the window is ignored")
	assert.Zero(t, w.EnemyShots.Len(), "the shot is still consumed")

	w.Step(0.9)
	shoot()
	w.Step(0)
	assert.Equal(t, 40.0, p.Current)
}

func TestContactDamageUsesEnemyHealth(t *testing.T) {
	w := collisionWorld()
	p := testPlayer(300, 300)
	w.SetPlayer(p)
	enemy := &component.Actor{Base: component.Base{X: 310, Y: 310, Width: 20, Height: 20}, Health: component.NewHealth(25), Score: 500}
	w.SpawnEnemy(enemy)

	w.Update(0.016)

	assert.Equal(t, 75.0, p.Current)
	assert.True(t, enemy.MarkedForDeletion)
	assert.Zero(t, w.Score, "contact kills award nothing")
	assert.Equal(t, 1, w.Effects.Len())
	events := w.Events().Drain()
	assert.Equal(t, 1, countEvents(events, ecs.EventEnemyKilled))
	assert.Equal(t, 1, countEvents(events, ecs.EventPlayerHit))
}

func TestPlayerDiesOnce(t *testing.T) {
	w := collisionWorld()
	p := testPlayer(300, 300)
	p.Current = 20
	w.SetPlayer(p)
	for i := 0; i < 3; i++ {
		w.SpawnEnemy(&component.Actor{Base: component.Base{X: 305, Y: 305, Width: 10, Height: 10}, Health: component.NewHealth(50)})
	}

	w.Update(0.016)
	w.Update(0.016)

	assert.False(t, p.IsAlive())
	assert.Equal(t, 1, countEvents(w.Events().Drain(), ecs.EventPlayerDied))
}

func TestIntersectsIsSymmetric(t *testing.T) {
	rects := []component.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 5, Y: 5, Width: 10, Height: 10},
		{X: 10, Y: 0, Width: 10, Height: 10},
		{X: -5, Y: -5, Width: 30, Height: 30},
		{X: 100, Y: 100, Width: 1, Height: 1},
		{X: 9.5, Y: 9.5, Width: 0.5, Height: 0.5},
	}
	for i, a := range rects {
		for j, b := range rects {
			assert.Equal(t, a.Intersects(b), b.Intersects(a), "rects %d and %d", i, j)
		}
	}
}
