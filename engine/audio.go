package engine

import (
	"github.com/milk9111/arcade/ecs/component"
	"go.uber.org/zap"
)

// SoundHandle identifies a playing sound so it can be stopped.
type SoundHandle uint64

// Audio is the sound collaborator. Failures are reported but never stop the
// simulation.
type Audio interface {
	PlaySound(name string, loop bool) (SoundHandle, error)
	StopSound(h SoundHandle) error
}

// Renderer is the drawing collaborator: entity sprites plus a text message
// for the non-playing screens.
type Renderer interface {
	component.Renderer
	DrawMessage(text string)
}

type nopAudio struct{}

func (nopAudio) PlaySound(string, bool) (SoundHandle, error) {
	return 0, nil
}

func (nopAudio) StopSound(SoundHandle) error {
	return nil
}

// music owns the one looped track that plays during PLAYING.
type music struct {
	audio   Audio
	log     *zap.Logger
	handle  SoundHandle
	track   string
	playing bool
}

func (m *music) start(track string) {
	m.stop()
	if track == "" {
		return
	}
	h, err := m.audio.PlaySound(track, true)
	if err != nil {
		m.log.Debug("music start failed", zap.String("track", track), zap.Error(err))
		return
	}
	m.handle = h
	m.track = track
	m.playing = true
}

func (m *music) stop() {
	if !m.playing {
		return
	}
	if err := m.audio.StopSound(m.handle); err != nil {
		m.log.Debug("music stop failed", zap.String("track", m.track), zap.Error(err))
	}
	m.playing = false
	m.handle = 0
	m.track = ""
}
