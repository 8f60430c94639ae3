package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas = component.Canvas{Width: 800, Height: 600}

func TestResolveStart(t *testing.T) {
	cases := []struct {
		name  string
		rule  prefabs.StartRule
		check func(t *testing.T, x, y float64)
	}{
		{"right_edge", prefabs.StartRule{Kind: prefabs.StartRightEdge}, func(t *testing.T, x, y float64) {
			assert.Equal(t, 800.0, x)
			assert.GreaterOrEqual(t, y, 0.0)
			assert.LessOrEqual(t, y, 560.0)
		}},
		{"random", prefabs.StartRule{Kind: prefabs.StartRandom}, func(t *testing.T, x, y float64) {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.LessOrEqual(t, x, 760.0)
			assert.GreaterOrEqual(t, y, 0.0)
			assert.LessOrEqual(t, y, 560.0)
		}},
		{"top", prefabs.StartRule{Kind: prefabs.StartTop}, func(t *testing.T, x, y float64) {
			assert.Equal(t, 800.0, x)
			assert.Equal(t, 0.0, y)
		}},
		{"bottom", prefabs.StartRule{Kind: prefabs.StartBottom}, func(t *testing.T, x, y float64) {
			assert.Equal(t, 800.0, x)
			assert.Equal(t, 560.0, y)
		}},
		{"literal", prefabs.StartRule{Kind: prefabs.StartLiteral, X: 12, Y: 34}, func(t *testing.T, x, y float64) {
			assert.Equal(t, 12.0, x)
			assert.Equal(t, 34.0, y)
		}},
	}

	rng := rand.New(rand.NewSource(7))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				x, y := ResolveStart(c.rule, canvas, 40, 40, rng)
				c.check(t, x, y)
			}
		})
	}
}

func TestResolveStartUsesCurrentCanvas(t *testing.T) {
	rule := prefabs.StartRule{Kind: prefabs.StartBottom}
	_, small := ResolveStart(rule, component.Canvas{Width: 100, Height: 100}, 10, 10, nil)
	_, large := ResolveStart(rule, component.Canvas{Width: 100, Height: 400}, 10, 10, nil)
	assert.Equal(t, 90.0, small)
	assert.Equal(t, 390.0, large)
}

func TestNewEnemy(t *testing.T) {
	w := ecs.NewWorld(canvas, rand.New(rand.NewSource(3)))
	spec := prefabs.ActorSpec{Width: 30, Height: 20, Health: 15, Speed: 100, Score: 75, Pattern: "sine"}

	phases := map[float64]bool{}
	for i := 0; i < 10; i++ {
		a, err := NewEnemy(w, "weaver", spec, prefabs.StartRule{Kind: prefabs.StartLiteral, X: 700, Y: 200})
		require.NoError(t, err)
		assert.Equal(t, component.PatternSine, a.Pattern)
		assert.Equal(t, 200.0, a.InitialY)
		assert.Equal(t, "weaver", a.Sprite)
		assert.Equal(t, 15.0, a.Current)
		assert.GreaterOrEqual(t, a.Phase, 0.0)
		assert.Less(t, a.Phase, 2*math.Pi)
		assert.Contains(t, []float64{-1, 1}, a.VerticalDir)
		phases[a.Phase] = true
	}
	assert.Greater(t, len(phases), 1, "phases should differ between instances")
	assert.Equal(t, 10, w.Enemies.Len())
}

func TestNewEnemyRejectsUnknownPattern(t *testing.T) {
	w := ecs.NewWorld(canvas, nil)
	_, err := NewEnemy(w, "odd", prefabs.ActorSpec{Pattern: "spiral"}, prefabs.StartRule{})
	assert.ErrorIs(t, err, prefabs.ErrUnknownPattern)
	assert.Zero(t, w.Enemies.Len())
}

func TestNewPlayerDefaults(t *testing.T) {
	w := ecs.NewWorld(canvas, nil)
	p, err := NewPlayer(w, prefabs.PlayerSpec{Health: 100, Width: 10, Height: 10})
	require.NoError(t, err)
	assert.Same(t, p, w.Player)
	assert.Equal(t, 1.0, p.InvulnerableFor)
	assert.Equal(t, 0.1, p.FlickerPeriod)
	assert.Equal(t, component.FactionPlayer, p.Faction)
}

func TestNewExplosionCentered(t *testing.T) {
	w := ecs.NewWorld(canvas, nil)
	fx := NewExplosion(w, prefabs.ExplosionSpec{Width: 20, Height: 10, Duration: 0.3}, 100, 50)
	assert.Equal(t, 90.0, fx.X)
	assert.Equal(t, 45.0, fx.Y)
	assert.Equal(t, 0.3, fx.TTL)
	assert.Equal(t, 1, w.Effects.Len())
}
