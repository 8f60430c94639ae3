package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap/zaptest"
)

func testSpec() *prefabs.GameSpec {
	return &prefabs.GameSpec{
		Canvas: prefabs.CanvasSpec{Width: 800, Height: 600},
		Player: prefabs.PlayerSpec{Width: 20, Height: 20, Health: 100, Speed: 200, FireRate: 2, Projectile: "laser", X: 50, Y: 290},
		Actors: map[string]prefabs.ActorSpec{
			"drone":   {Width: 20, Height: 20, Health: 10, Speed: 100, Score: 100},
			"gunship": {Width: 40, Height: 20, Health: 30, Speed: 0, Score: 300, FireRate: 2, Projectile: "bolt"},
		},
		Projectiles: map[string]prefabs.ProjectileSpec{
			"laser": {Width: 10, Height: 4, Speed: 500, Damage: 10},
			"bolt":  {Width: 6, Height: 6, Speed: 200, Damage: 20, Aimed: true},
		},
		Explosion: prefabs.ExplosionSpec{Width: 30, Height: 30, Duration: 0.5},
		Levels:    []prefabs.LevelSpec{{Duration: 20}},
	}
}

func newWorld() *ecs.World {
	return ecs.NewWorld(component.Canvas{Width: 800, Height: 600}, rand.New(rand.NewSource(42)))
}

func countEvents(events []ecs.Event, t ecs.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestPipeline(t *testing.T, spec *prefabs.GameSpec) (*ecs.World, *Pipeline) {
	t.Helper()
	w := newWorld()
	p := NewPipeline(zaptest.NewLogger(t), spec, nil)
	p.Install(w)
	return w, p
}
