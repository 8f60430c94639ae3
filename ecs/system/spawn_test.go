package system

import (
	"testing"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func spawnWorld(t *testing.T, levels ...prefabs.LevelSpec) (*ecs.World, *SpawnSystem) {
	t.Helper()
	spec := testSpec()
	spec.Levels = levels
	w := newWorld()
	s := NewSpawnSystem(zaptest.NewLogger(t), spec)
	w.AddSystem(s)
	return w, s
}

func TestWaveSpawnsAtFiveSixSeven(t *testing.T) {
	w, _ := spawnWorld(t, prefabs.LevelSpec{
		Duration: 60,
		Spawns:   []prefabs.SpawnSpec{{Time: 5, Actor: "drone", Count: 3, Interval: 1}},
	})

	var spawnedAt []float64
	for tick := 1; tick <= 12; tick++ {
		before := w.Enemies.Len()
		w.Step(1)
		for i := before; i < w.Enemies.Len(); i++ {
			spawnedAt = append(spawnedAt, w.Time())
		}
	}
	assert.Equal(t, []float64{5, 6, 7}, spawnedAt)
}

func TestSingleEventFiresOnce(t *testing.T) {
	w, s := spawnWorld(t, prefabs.LevelSpec{
		Duration: 60,
		Spawns:   []prefabs.SpawnSpec{{Time: 2, Actor: "drone"}},
	})
	for i := 0; i < 10; i++ {
		w.Step(1)
	}
	assert.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 0, s.Pending())
}

func TestWaveCatchesUpOnLargeDelta(t *testing.T) {
	w, _ := spawnWorld(t, prefabs.LevelSpec{
		Duration: 60,
		Spawns:   []prefabs.SpawnSpec{{Time: 1, Actor: "drone", Count: 4, Interval: 0.5}},
	})
	w.Step(10)
	assert.Equal(t, 4, w.Enemies.Len())
}

func TestUnknownActorIsSkipped(t *testing.T) {
	w, _ := spawnWorld(t, prefabs.LevelSpec{
		Duration: 60,
		Spawns: []prefabs.SpawnSpec{
			{Time: 0, Actor: "ghost", Count: 3, Interval: 1},
			{Time: 0, Actor: "drone"},
		},
	})
	for i := 0; i < 5; i++ {
		w.Step(1)
	}
	assert.Equal(t, 1, w.Enemies.Len())
}

func TestLevelsExhaustedOnce(t *testing.T) {
	w, s := spawnWorld(t, prefabs.LevelSpec{Duration: 20})

	exhausted := 0
	var at float64
	for i := 0; i < 30; i++ {
		w.Step(1)
		n := countEvents(w.Events().Drain(), ecs.EventLevelsExhausted)
		if n > 0 && exhausted == 0 {
			at = w.Time()
		}
		exhausted += n
	}
	assert.Equal(t, 1, exhausted)
	assert.Equal(t, 20.0, at)
	assert.True(t, s.Done())
}

func TestLevelAdvanceCancelsWave(t *testing.T) {
	w, s := spawnWorld(t,
		prefabs.LevelSpec{Duration: 3, Spawns: []prefabs.SpawnSpec{{Time: 1, Actor: "drone", Count: 10, Interval: 1}}},
		prefabs.LevelSpec{Duration: 10},
	)
	for i := 0; i < 3; i++ {
		w.Step(1)
	}
	require.Equal(t, 1, s.Level())
	assert.Equal(t, 0.0, s.Elapsed())
	spawned := w.Enemies.Len()
	assert.Equal(t, 3, spawned)

	for i := 0; i < 5; i++ {
		w.Step(1)
	}
	assert.Equal(t, spawned, w.Enemies.Len(), "no spawns from the ended level")
}

func TestLongTickStopsAtLevelEnd(t *testing.T) {
	w, s := spawnWorld(t,
		prefabs.LevelSpec{Duration: 3, Spawns: []prefabs.SpawnSpec{
			{Time: 1, Actor: "drone", Count: 10, Interval: 1},
			{Time: 5, Actor: "gunship"},
		}},
		prefabs.LevelSpec{Duration: 10},
	)
	w.Step(10)

	require.Equal(t, 1, s.Level())
	assert.Equal(t, 3, w.Enemies.Len(), "only spawns due at 1, 2 and 3")
	for _, a := range w.Enemies.Items() {
		assert.Equal(t, "drone", a.Kind)
	}
}

func TestResetRestartsEvents(t *testing.T) {
	w, s := spawnWorld(t, prefabs.LevelSpec{
		Duration: 60,
		Spawns:   []prefabs.SpawnSpec{{Time: 1, Actor: "drone", Count: 2, Interval: 1}},
	})
	for i := 0; i < 3; i++ {
		w.Step(1)
	}
	require.Equal(t, 2, w.Enemies.Len())

	w.Reset()
	s.Reset()
	for i := 0; i < 3; i++ {
		w.Step(1)
	}
	assert.Equal(t, 2, w.Enemies.Len())
}

func TestCancelStopsPendingWave(t *testing.T) {
	w, s := spawnWorld(t, prefabs.LevelSpec{
		Duration: 60,
		Spawns:   []prefabs.SpawnSpec{{Time: 1, Actor: "drone", Count: 5, Interval: 1}},
	})
	w.Step(1)
	require.Equal(t, 4, s.Pending())

	s.Cancel()
	for i := 0; i < 10; i++ {
		w.Step(1)
	}
	assert.Equal(t, 1, w.Enemies.Len())
	assert.Zero(t, s.Pending())
}
