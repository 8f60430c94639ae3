package main

import (
	"math"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arcade/config"
	"github.com/milk9111/arcade/engine"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

const (
	fallbackWidth  = 800
	fallbackHeight = 600
)

type Game struct {
	log      *zap.Logger
	settings *config.Settings
	engine   *engine.Engine
	renderer *ebitenRenderer
	audio    *ebitenAudio
	watcher  *prefabs.Watcher
	last     time.Time
}

func NewGame(log *zap.Logger, settings *config.Settings) *Game {
	audio := newEbitenAudio(log.Named("audio"))

	var opts []engine.Option
	if settings.Game.Seed != 0 {
		opts = append(opts, engine.WithSeed(settings.Game.Seed))
	}

	g := &Game{
		log:      log,
		settings: settings,
		engine:   engine.New(log.Named("engine"), audio, opts...),
		renderer: newEbitenRenderer(log.Named("render")),
		audio:    audio,
	}

	spec, err := prefabs.LoadGameSpec(settings.Game.Config)
	if err != nil {
		g.engine.Fail(err)
	} else if err := g.engine.Load(spec); err != nil {
		log.Error("game rejected", zap.Error(err))
	}

	if settings.Game.Watch {
		g.startWatcher()
	}
	return g
}

func (g *Game) startWatcher() {
	dirs := []string{"prefabs", filepath.Join("prefabs", "scripts")}
	if p := g.settings.Game.Config; p != "" {
		if dir := filepath.Dir(p); dir != "." && dir != "prefabs" {
			dirs = append(dirs, dir)
		}
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		g.log.Warn("watch disabled", zap.Strings("dirs", dirs), zap.Error(err))
		return
	}
	g.watcher = w
	g.log.Info("watching for changes", zap.Strings("dirs", dirs))
}

// WindowSize is the canvas size scaled by the window scale.
func (g *Game) WindowSize() (int, int) {
	w, h := g.canvasSize()
	scale := g.settings.Window.Scale
	return int(math.Round(float64(w) * scale)), int(math.Round(float64(h) * scale))
}

func (g *Game) canvasSize() (int, int) {
	spec := g.engine.Spec()
	if spec == nil {
		return fallbackWidth, fallbackHeight
	}
	return int(spec.Canvas.Width), int(spec.Canvas.Height)
}

func (g *Game) Update() error {
	g.pollWatcher()

	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.engine.Update(g.settings.Game.ClampDelta(dt), readActions())
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watch error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if filepath.Ext(path) == ".tengo" {
		g.engine.ReloadScripts()
		g.log.Info("scripts reloaded", zap.String("path", path))
		return
	}

	name := g.settings.Game.Config
	if name == "" {
		name = prefabs.DefaultGame
	}
	if filepath.Base(path) != filepath.Base(name) {
		return
	}

	spec, err := prefabs.LoadGameSpec(name)
	if err != nil {
		g.log.Warn("reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	if g.engine.Err() != nil {
		// a document that failed at startup recovers through Load
		if err := g.engine.Load(spec); err != nil {
			g.log.Warn("reload rejected", zap.Error(err))
		}
		return
	}
	if err := g.engine.ReplaceSpec(spec); err == nil {
		g.log.Info("game document reloaded", zap.String("path", path))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.begin(screen)
	g.engine.Draw(g.renderer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasSize()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.audio.close()
}
