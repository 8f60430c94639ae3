package main

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/arcade/assets"
	"github.com/milk9111/arcade/engine"
	"go.uber.org/zap"
)

const sampleRate = 44100

// ebitenAudio plays sound keys from the embedded assets. One-shot players
// are kept until they finish so they are not collected mid-sound.
type ebitenAudio struct {
	log     *zap.Logger
	ctx     *audio.Context
	mu      sync.Mutex
	next    engine.SoundHandle
	players map[engine.SoundHandle]*audio.Player
}

func newEbitenAudio(log *zap.Logger) *ebitenAudio {
	return &ebitenAudio{
		log:     log,
		ctx:     audio.NewContext(sampleRate),
		players: map[engine.SoundHandle]*audio.Player{},
	}
}

func (a *ebitenAudio) PlaySound(name string, loop bool) (engine.SoundHandle, error) {
	b, err := assets.LoadSound(name)
	if err != nil {
		return 0, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("decode wav %q: %w", name, err)
	}

	var player *audio.Player
	if loop {
		player, err = a.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	} else {
		player, err = a.ctx.NewPlayer(stream)
	}
	if err != nil {
		return 0, fmt.Errorf("player %q: %w", name, err)
	}
	player.Play()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.prune()
	a.next++
	a.players[a.next] = player
	return a.next, nil
}

func (a *ebitenAudio) StopSound(h engine.SoundHandle) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	player, ok := a.players[h]
	if !ok {
		return fmt.Errorf("unknown sound handle %d", h)
	}
	delete(a.players, h)
	player.Pause()
	return player.Close()
}

// prune drops finished one-shot players.
func (a *ebitenAudio) prune() {
	for h, p := range a.players {
		if !p.IsPlaying() {
			_ = p.Close()
			delete(a.players, h)
		}
	}
}

func (a *ebitenAudio) close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for h, p := range a.players {
		p.Pause()
		_ = p.Close()
		delete(a.players, h)
	}
}
