package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

// Pipeline is the per-tick system order for one game document. Spawning runs
// first so new actors act in the tick they appear; projectiles exist before
// collision runs.
type Pipeline struct {
	Spawn   *SpawnSystem
	Scripts *ScriptRunner
	systems []ecs.System
}

func NewPipeline(log *zap.Logger, spec *prefabs.GameSpec, scripts *ScriptRunner) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if scripts == nil {
		scripts = NewScriptRunner(nil)
	}
	spawn := NewSpawnSystem(log.Named("spawn"), spec)
	return &Pipeline{
		Spawn:   spawn,
		Scripts: scripts,
		systems: []ecs.System{
			spawn,
			NewInvulnerableSystem(),
			NewPlayerSystem(log.Named("player"), spec),
			NewMovementSystem(log.Named("movement"), scripts),
			NewFiringSystem(log.Named("firing"), spec),
			NewProjectileSystem(),
			NewTTLSystem(),
			NewCollisionSystem(spec),
		},
	}
}

// Install adds the systems to w in order.
func (p *Pipeline) Install(w *ecs.World) {
	for _, s := range p.systems {
		w.AddSystem(s)
	}
}
