package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

type spawnProgress struct {
	fired   bool
	emitted int
	next    float64
}

// SpawnSystem walks the level list, spawning actors as each level's elapsed
// time reaches their events. Waves are driven by the same elapsed clock, so
// cancelling one is just dropping its progress.
type SpawnSystem struct {
	log  *zap.Logger
	spec *prefabs.GameSpec
	warn *warnOnce

	level    int
	elapsed  float64
	progress []spawnProgress
	started  bool
	done     bool
}

func NewSpawnSystem(log *zap.Logger, spec *prefabs.GameSpec) *SpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SpawnSystem{log: log, spec: spec, warn: newWarnOnce(log)}
	s.Reset()
	return s
}

// Reset rewinds to the first level with every event unfired.
func (s *SpawnSystem) Reset() {
	s.level = 0
	s.elapsed = 0
	s.started = false
	s.done = false
	s.progress = s.freshProgress()
}

// Cancel stops every pending wave of the current level and halts the
// scheduler until the next Reset.
func (s *SpawnSystem) Cancel() {
	s.progress = nil
	s.done = true
}

// Level is the index of the running level.
func (s *SpawnSystem) Level() int {
	return s.level
}

// Elapsed is the time spent in the running level.
func (s *SpawnSystem) Elapsed() float64 {
	return s.elapsed
}

// Done reports whether the scheduler has stopped, either because the levels
// ran out or because it was cancelled.
func (s *SpawnSystem) Done() bool {
	return s.done
}

// Pending counts wave spawns still owed by fired events of the current level.
func (s *SpawnSystem) Pending() int {
	if s.done || s.spec == nil || s.level >= len(s.spec.Levels) {
		return 0
	}
	n := 0
	for i, ev := range s.spec.Levels[s.level].Spawns {
		p := s.progress[i]
		if p.fired && ev.Wave() {
			n += ev.Count - p.emitted
		}
	}
	return n
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.done || s.spec == nil {
		return
	}
	if s.level >= len(s.spec.Levels) {
		s.exhaust(w)
		return
	}
	if !s.started {
		s.started = true
		s.log.Info("level started", zap.Int("level", s.level))
		w.Emit(ecs.EventLevelStarted, ecs.LevelEvent{Index: s.level})
	}

	if dt := w.Delta(); dt > 0 {
		s.elapsed += dt
	}

	level := s.spec.Levels[s.level]
	// spawns owed after the level ends are dropped with the level
	limit := math.Min(s.elapsed, level.Duration)
	for i, ev := range level.Spawns {
		s.process(w, &s.progress[i], ev, limit)
	}

	if s.elapsed >= level.Duration {
		s.advance(w)
	}
}

func (s *SpawnSystem) process(w *ecs.World, p *spawnProgress, ev prefabs.SpawnSpec, limit float64) {
	if !p.fired {
		if limit < ev.Time {
			return
		}
		// mark first so the event can never re-enter
		p.fired = true
		if !ev.Wave() {
			n := ev.Count
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				s.spawn(w, ev)
			}
			return
		}
		p.next = ev.Time
	}
	if !ev.Wave() {
		return
	}
	for p.emitted < ev.Count && limit >= p.next {
		s.spawn(w, ev)
		p.emitted++
		p.next += ev.Interval
	}
}

func (s *SpawnSystem) spawn(w *ecs.World, ev prefabs.SpawnSpec) {
	spec, ok := s.spec.Actors[ev.Actor]
	if !ok {
		s.warn.warn("actor:"+ev.Actor, "spawn: unknown actor type, skipping", zap.String("actor", ev.Actor))
		return
	}
	if _, err := entity.NewEnemy(w, ev.Actor, spec, ev.Start); err != nil {
		s.warn.warn("actor:"+ev.Actor, "spawn: build actor failed, skipping", zap.String("actor", ev.Actor), zap.Error(err))
	}
}

func (s *SpawnSystem) advance(w *ecs.World) {
	s.level++
	s.elapsed = 0
	s.progress = s.freshProgress()
	if s.level >= len(s.spec.Levels) {
		s.exhaust(w)
		return
	}
	s.log.Info("level started", zap.Int("level", s.level))
	w.Emit(ecs.EventLevelStarted, ecs.LevelEvent{Index: s.level})
}

func (s *SpawnSystem) exhaust(w *ecs.World) {
	s.done = true
	s.progress = nil
	s.log.Info("levels exhausted")
	w.Emit(ecs.EventLevelsExhausted, nil)
}

func (s *SpawnSystem) freshProgress() []spawnProgress {
	if s.spec == nil || s.level >= len(s.spec.Levels) {
		return nil
	}
	return make([]spawnProgress, len(s.spec.Levels[s.level].Spawns))
}
