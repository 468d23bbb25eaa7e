// Package session owns one running garden: the built scene, its particle
// fields and ripple surfaces, and the ambient audio sources it started.
// Everything a session creates is released by its Close, so a host can
// tear a garden down and build a fresh one without leaking state.
package session

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oliviahylam/zen-garden/internal/config"
	"github.com/oliviahylam/zen-garden/internal/engine/audio"
	"github.com/oliviahylam/zen-garden/internal/garden/synth"
	"github.com/oliviahylam/zen-garden/internal/garden/tableau"
	"github.com/oliviahylam/zen-garden/internal/logger"
)

// ambientVoice pairs a synthesized voice with its loop length. Longer
// loops for the sparse voices keep the chirp pattern from reading as a
// repeat.
type ambientVoice struct {
	voice    synth.Voice
	duration time.Duration
}

var ambientVoices = []ambientVoice{
	{synth.VoiceWater, 6 * time.Second},
	{synth.VoiceBreeze, 11 * time.Second},
	{synth.VoiceBirds, 23 * time.Second},
	{synth.VoiceBubbles, 17 * time.Second},
}

// Session is one live garden instance.
type Session struct {
	Scene *tableau.Scene

	audio   *audio.Manager
	sources []*audio.Source

	mu     sync.Mutex
	closed bool
}

// New builds the garden described by cfg and starts its ambient voices on
// the given audio manager. A voice that fails to synthesize is skipped
// with a warning; the garden itself must build or New fails.
func New(cfg *config.Config, mgr *audio.Manager) (*Session, error) {
	scene, err := tableau.Build(tableau.Params{
		Seed:         cfg.Scene.Seed,
		TreeCount:    cfg.Scene.TreeCount,
		RabbitCount:  cfg.Scene.RabbitCount,
		PebbleCount:  cfg.Scene.PebbleCount,
		LanternCount: cfg.Scene.LanternCount,
		DustCount:    cfg.Scene.DustCount,
		MistCount:    cfg.Scene.MistCount,
		DropletCount: cfg.Scene.DropletCount,
		OrbCount:     cfg.Scene.OrbCount,
	})
	if err != nil {
		return nil, fmt.Errorf("build garden: %w", err)
	}

	s := &Session{Scene: scene, audio: mgr}

	if mgr != nil {
		for i, av := range ambientVoices {
			buf, err := synth.Synthesize(av.voice, av.duration, cfg.Audio.SampleRate, cfg.Scene.Seed+int64(i))
			if err != nil {
				logger.Warn("skipping ambient voice", zap.Stringer("voice", av.voice), zap.Error(err))
				continue
			}
			src, err := mgr.StartVoice(av.voice.String(), buf, cfg.Audio.SampleRate)
			if err != nil {
				logger.Warn("starting ambient voice", zap.Stringer("voice", av.voice), zap.Error(err))
				continue
			}
			s.sources = append(s.sources, src)
		}
	}

	return s, nil
}

// Update advances the time-stepped parts of the garden: particle fields
// and the stream ripple. Node animation needs no update call; it is
// evaluated from elapsed time during traversal.
func (s *Session) Update(elapsed, dt float64) {
	for _, f := range s.Scene.Fields {
		f.Field.Advance(dt)
	}
	for _, surface := range s.Scene.Streams {
		surface.Update(elapsed)
	}
}

// Sources returns the ambient sources this session started.
func (s *Session) Sources() []*audio.Source {
	out := make([]*audio.Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// Close stops every ambient voice the session started. Each voice is
// stopped exactly once no matter how often Close runs; the audio manager
// itself stays open for the next session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for _, src := range s.sources {
		src.Stop()
	}
}
