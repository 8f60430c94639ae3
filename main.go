package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arcade/config"
	"go.uber.org/zap"
)

func main() {
	settingsPath := flag.String("settings", config.DefaultPath, "host settings file (TOML)")
	gamePath := flag.String("game", "", "game document (.json or .yaml); overrides [game] config")
	watch := flag.Bool("watch", false, "reload the game document and scripts when they change")
	debug := flag.Bool("debug", false, "enable debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *gamePath != "" {
		settings.Game.Config = *gamePath
	}
	if *watch {
		settings.Game.Watch = true
	}
	if *debug {
		settings.Logging.Level = "debug"
	}

	log, err := newLogger(settings.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game := NewGame(log, settings)
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(settings.Window.Title)
	if settings.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if settings.Window.TPS > 0 {
		ebiten.SetTPS(settings.Window.TPS)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}
