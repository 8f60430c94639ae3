package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/ecs/system"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

var ErrNotLoaded = errors.New("engine: game not loaded")

// Engine drives the game state machine and, while PLAYING, the simulation.
// The host calls Update once per frame and Draw once per frame.
type Engine struct {
	log   *zap.Logger
	audio Audio
	rng   *rand.Rand

	spec        *prefabs.GameSpec
	pending     *prefabs.GameSpec
	world       *ecs.World
	pipeline    *system.Pipeline
	scripts     *system.ScriptRunner
	transitions Transitions
	fixedEdges  bool

	state   State
	outcome Outcome
	err     error
	prev    component.Actions
	music   music
}

type Option func(*Engine)

// WithSeed makes spawn positions and movement phases reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTransitions replaces the edge set derived from the game document.
func WithTransitions(t Transitions) Option {
	return func(e *Engine) {
		e.transitions = t
		e.fixedEdges = true
	}
}

// WithScripts shares a script runner, e.g. one that reads scripts from a
// test fixture.
func WithScripts(r *system.ScriptRunner) Option {
	return func(e *Engine) {
		e.scripts = r
	}
}

func New(log *zap.Logger, audio Audio, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if audio == nil {
		audio = nopAudio{}
	}
	e := &Engine{
		log:         log,
		audio:       audio,
		transitions: DefaultTransitions(false),
		state:       StateLoading,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if e.scripts == nil {
		e.scripts = system.NewScriptRunner(nil)
	}
	e.music = music{audio: audio, log: log.Named("music")}
	return e
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Outcome() Outcome {
	return e.outcome
}

func (e *Engine) Err() error {
	return e.err
}

func (e *Engine) World() *ecs.World {
	return e.world
}

func (e *Engine) Spec() *prefabs.GameSpec {
	return e.spec
}

// Score is the score of the current or last run.
func (e *Engine) Score() int {
	if e.world == nil {
		return 0
	}
	return e.world.Score
}

// Level is the index of the running level.
func (e *Engine) Level() int {
	if e.pipeline == nil {
		return 0
	}
	return e.pipeline.Spawn.Level()
}

// Load installs a game document and leaves LOADING. Loading while a run is
// in progress is deferred like ReplaceSpec.
func (e *Engine) Load(spec *prefabs.GameSpec) error {
	if spec == nil {
		return ErrNotLoaded
	}
	if err := spec.Validate(); err != nil {
		e.Fail(err)
		return err
	}
	if !e.fixedEdges {
		e.transitions = DefaultTransitions(spec.SkipInstructions)
	}
	if err := e.transitions.Validate(); err != nil {
		e.Fail(err)
		return err
	}
	if e.state == StatePlaying {
		e.pending = spec
		return nil
	}
	e.install(spec)
	e.err = nil
	if e.state == StateLoading {
		e.fire(TriggerLoaded)
	}
	return nil
}

// Fail records a fatal load error. The engine stays in LOADING and Draw
// shows the error until a successful Load.
func (e *Engine) Fail(err error) {
	if err == nil {
		return
	}
	e.log.Error("load failed", zap.Error(err))
	if e.state == StatePlaying {
		e.leavePlaying()
	}
	e.err = err
	e.state = StateLoading
}

// ReplaceSpec swaps in an edited game document. Outside PLAYING it applies
// at once; during a run it waits until PLAYING is left.
func (e *Engine) ReplaceSpec(spec *prefabs.GameSpec) error {
	if spec == nil {
		return ErrNotLoaded
	}
	if err := spec.Validate(); err != nil {
		e.log.Warn("reload rejected", zap.Error(err))
		return err
	}
	if e.state == StatePlaying {
		e.log.Info("reload deferred until the run ends")
		e.pending = spec
		return nil
	}
	return e.Load(spec)
}

// ReloadScripts drops compiled movement scripts so edits take effect.
func (e *Engine) ReloadScripts() {
	e.scripts.Reset()
}

// install builds a fresh world and pipeline for spec. The last run's score
// carries over so GAME_OVER still shows it.
func (e *Engine) install(spec *prefabs.GameSpec) {
	score := e.Score()
	e.spec = spec
	e.world = ecs.NewWorld(component.Canvas{Width: spec.Canvas.Width, Height: spec.Canvas.Height}, e.rng)
	e.world.Score = score
	e.pipeline = system.NewPipeline(e.log, spec, e.scripts)
	e.pipeline.Install(e.world)
	e.pipeline.Spawn.Cancel()
	e.log.Info("game loaded",
		zap.Int("levels", len(spec.Levels)),
		zap.Int("actors", len(spec.Actors)),
		zap.Bool("skip_instructions", spec.SkipInstructions))
}

// Update advances one frame by dt seconds with the current input snapshot.
// dt is used as given.
func (e *Engine) Update(dt float64, input component.Actions) {
	pressed := input.Pressed(e.prev)
	e.prev = input

	switch e.state {
	case StateLoading:
	case StatePlaying:
		e.tick(dt, input)
	default:
		if pressed.Has(component.ActionConfirm) {
			e.fire(TriggerConfirm)
		}
	}
}

func (e *Engine) tick(dt float64, input component.Actions) {
	e.world.Input = input
	e.world.Step(dt)

	for _, ev := range e.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventSound:
			if s, ok := ev.Data.(ecs.SoundEvent); ok {
				e.play(s.Name)
			}
		case ecs.EventPlayerDied:
			if e.state == StatePlaying {
				e.outcome = OutcomeDefeat
				e.fire(TriggerPlayerDied)
			}
		case ecs.EventLevelsExhausted:
			if e.state == StatePlaying {
				e.outcome = OutcomeVictory
				e.fire(TriggerLevelsExhausted)
			}
		case ecs.EventLevelStarted:
			if l, ok := ev.Data.(ecs.LevelEvent); ok {
				e.log.Debug("level", zap.Int("index", l.Index))
			}
		}
	}
}

func (e *Engine) play(name string) {
	key := e.spec.Sound(name)
	if _, err := e.audio.PlaySound(key, false); err != nil {
		e.log.Debug("sound failed", zap.String("sound", key), zap.Error(err))
	}
}

// fire applies a trigger. It reports whether the state changed.
func (e *Engine) fire(trigger Trigger) bool {
	next, ok := e.transitions.Next(e.state, trigger)
	if !ok {
		return false
	}
	prev := e.state
	if prev == StatePlaying && next != StatePlaying {
		e.leavePlaying()
	}
	e.state = next
	e.log.Info("state", zap.Stringer("from", prev), zap.Stringer("to", next), zap.Stringer("trigger", trigger))
	if next == StatePlaying {
		e.enterPlaying()
	}
	return true
}

func (e *Engine) enterPlaying() {
	e.outcome = OutcomeNone
	e.world.Reset()
	e.pipeline.Spawn.Reset()
	if _, err := entity.NewPlayer(e.world, e.spec.Player); err != nil {
		e.log.Warn("player spawn failed", zap.Error(err))
	}
	e.music.start(e.spec.Music)
}

func (e *Engine) leavePlaying() {
	e.music.stop()
	e.pipeline.Spawn.Cancel()
	if e.pending != nil {
		spec := e.pending
		e.pending = nil
		e.install(spec)
		e.log.Info("deferred reload applied")
	}
}

// Draw hands the current frame to the renderer.
func (e *Engine) Draw(r Renderer) {
	if r == nil {
		return
	}
	switch e.state {
	case StateLoading:
		if e.err != nil {
			r.DrawMessage(fmt.Sprintf("failed to load game: %v", e.err))
			return
		}
		r.DrawMessage("loading...")
	case StateTitle:
		r.DrawMessage("press enter to start")
	case StateInstructions:
		r.DrawMessage("arrows move, space fires. press enter")
	case StatePlaying:
		e.world.Draw(r)
	case StateGameOver:
		e.world.Draw(r)
		title := "game over"
		if e.outcome == OutcomeVictory {
			title = "all levels cleared"
		}
		r.DrawMessage(fmt.Sprintf("%s  score %d  press enter", title, e.world.Score))
	}
}
