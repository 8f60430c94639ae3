package system

import (
	"math"
	"testing"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAim(t *testing.T) {
	cases := []struct {
		name           string
		fx, fy, tx, ty float64
		forward        float64
		wantX, wantY   float64
	}{
		{"toward_target", 0, 0, 3, 4, -1, 6, 8},
		{"behind_shooter", 10, 0, 0, 0, 1, -10, 0},
		{"coincident_falls_back_forward", 5, 5, 5, 5, -1, -10, 0},
		{"coincident_player_forward", 5, 5, 5, 5, 1, 10, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vx, vy := Aim(c.fx, c.fy, c.tx, c.ty, 10, c.forward)
			assert.InDelta(t, c.wantX, vx, 1e-9)
			assert.InDelta(t, c.wantY, vy, 1e-9)
		})
	}
}

func firingWorld(t *testing.T) (*ecs.World, *component.Actor) {
	t.Helper()
	spec := testSpec()
	w := newWorld()
	w.AddSystem(NewFiringSystem(zaptest.NewLogger(t), spec))
	a, err := entity.NewEnemy(w, "gunship", spec.Actors["gunship"], prefabs.StartRule{Kind: prefabs.StartLiteral, X: 600, Y: 100})
	require.NoError(t, err)
	return w, a
}

func TestFireRateCooldown(t *testing.T) {
	cases := []struct {
		name  string
		steps []float64
		shots []int
	}{
		{"under_interval_never_doubles", []float64{0.3, 0.3, 0.3, 0.3}, []int{0, 1, 1, 2}},
		{"exact_interval_fires_each_time", []float64{0.5, 0.5, 0.5}, []int{1, 2, 3}},
		{"straddling_threshold", []float64{0.49, 0.02, 0.49, 0.02}, []int{0, 1, 1, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := firingWorld(t)
			for i, dt := range c.steps {
				w.Step(dt)
				assert.Equal(t, c.shots[i], w.EnemyShots.Len(), "after step %d", i)
			}
		})
	}
}

func TestZeroDeltaNeverDoubleFires(t *testing.T) {
	w, a := firingWorld(t)
	a.FireRate = math.Inf(1)
	w.Step(0.1)
	require.Equal(t, 1, w.EnemyShots.Len())
	w.Step(0)
	assert.Equal(t, 1, w.EnemyShots.Len())
}

func TestAimedShotTargetsPlayerCenter(t *testing.T) {
	w, a := firingWorld(t)
	w.SetPlayer(&component.Player{Actor: component.Actor{
		Base:   component.Base{X: 100, Y: 400, Width: 20, Height: 20},
		Health: component.NewHealth(100),
	}})

	w.Step(0.5)
	require.Equal(t, 1, w.EnemyShots.Len())
	shot := w.EnemyShots.Items()[0]

	mx, my := a.X, a.Y+a.Height/2
	dx, dy := 110-mx, 410-my
	l := math.Hypot(dx, dy)
	assert.InDelta(t, 200*dx/l, shot.VX, 1e-9)
	assert.InDelta(t, 200*dy/l, shot.VY, 1e-9)
	assert.Equal(t, component.FactionEnemy, shot.Faction)
	assert.Equal(t, 1, countEvents(w.Events().Drain(), ecs.EventSound))
}

func TestNoTargetFiresForward(t *testing.T) {
	w, _ := firingWorld(t)
	w.Step(0.5)
	require.Equal(t, 1, w.EnemyShots.Len())
	shot := w.EnemyShots.Items()[0]
	assert.Equal(t, -200.0, shot.VX)
	assert.Equal(t, 0.0, shot.VY)
}

func TestUnknownProjectileIsSkipped(t *testing.T) {
	w, a := firingWorld(t)
	a.Projectile = "missing"
	for i := 0; i < 4; i++ {
		w.Step(0.5)
	}
	assert.Zero(t, w.EnemyShots.Len())
}

func TestNonFiringActor(t *testing.T) {
	w, a := firingWorld(t)
	a.FireRate = 0
	for i := 0; i < 4; i++ {
		w.Step(1)
	}
	assert.Zero(t, w.EnemyShots.Len())
}
