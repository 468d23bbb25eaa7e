// Package audio plays looping synthesized ambient voices through the
// system speaker. Playback may be deferred: voices requested before the
// manager is unlocked are queued and started on the first qualifying user
// gesture, mirroring browser autoplay policy.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Source is one looping voice registered with the manager. The manager
// guarantees its stop operation runs exactly once on teardown.
type Source struct {
	name string
	ctrl *beep.Ctrl
	vol  *effects.Volume

	mu        sync.Mutex
	playing   bool
	stopped   bool
	stopCount int
}

// Name returns the voice label the source was started with.
func (s *Source) Name() string { return s.name }

// Playing reports whether the source has been handed to the speaker.
func (s *Source) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// StopCount returns how many times the stop operation actually ran.
// Teardown must leave this at exactly 1 for every started source.
func (s *Source) StopCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCount
}

// Stop halts playback. Safe to call more than once; only the first call
// performs the stop.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopInternal()
}

func (s *Source) stopInternal() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.stopCount++
	if s.playing {
		speaker.Lock()
		s.ctrl.Paused = true
		speaker.Unlock()
		s.playing = false
	}
}

// Manager owns the speaker and every active voice. Close releases all of
// them deterministically, including after a failed Init.
type Manager struct {
	mu sync.Mutex

	sampleRate  beep.SampleRate
	initialized bool
	unlocked    bool
	closed      bool
	initErr     error

	masterVolume  float64
	ambientVolume float64
	muted         bool

	sources []*Source
	pending []*Source
}

// New creates an audio manager for the given output sample rate.
func New(sampleRate int) *Manager {
	return &Manager{
		sampleRate:    beep.SampleRate(sampleRate),
		masterVolume:  1.0,
		ambientVolume: 0.7,
	}
}

// Init opens the speaker. Failure is recorded and returned but is not
// fatal: the manager stays usable and a later Unlock retries.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initInternal()
}

func (m *Manager) initInternal() error {
	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/20)); err != nil {
		m.initErr = fmt.Errorf("init speaker: %w", err)
		return m.initErr
	}
	m.initialized = true
	m.initErr = nil
	return nil
}

// Ready reports whether voices play immediately when started.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && m.unlocked
}

// InitError returns the most recent speaker initialization failure, if any.
func (m *Manager) InitError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initErr
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.applyVolumes()
}

// SetAmbientVolume sets the ambient voice volume (0.0 to 1.0).
func (m *Manager) SetAmbientVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ambientVolume = clamp(vol, 0, 1)
	m.applyVolumes()
}

// SetMuted silences or restores all voices without stopping them.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.applyVolumes()
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.masterVolume
}

func (m *Manager) applyVolumes() {
	vol := m.masterVolume * m.ambientVolume
	silent := m.muted || vol <= 0
	db := volumeToDb(vol)

	locked := m.initialized
	if locked {
		speaker.Lock()
	}
	for _, s := range m.sources {
		s.vol.Silent = silent
		s.vol.Volume = db
	}
	if locked {
		speaker.Unlock()
	}
}

// StartVoice registers a looping voice for the given mono sample buffer.
// If the manager is not yet ready the voice is queued and starts on
// Unlock.
func (m *Manager) StartVoice(name string, buf []float64, sampleRate int) (*Source, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("audio: empty buffer for voice %q", name)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d for voice %q", sampleRate, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("audio: manager closed")
	}

	var streamer beep.Streamer = &loopBuffer{samples: buf}
	if sr := beep.SampleRate(sampleRate); sr != m.sampleRate {
		streamer = beep.Resample(4, sr, m.sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	vol := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
		Volume:   volumeToDb(m.masterVolume * m.ambientVolume),
		Silent:   m.muted,
	}

	src := &Source{name: name, ctrl: ctrl, vol: vol}
	m.sources = append(m.sources, src)

	if m.initialized && m.unlocked {
		m.play(src)
	} else {
		m.pending = append(m.pending, src)
	}

	return src, nil
}

// Unlock marks that a qualifying user gesture was observed. It retries
// speaker initialization if needed and starts every queued voice. The
// returned error reports an initialization failure; queued voices stay
// pending for a later attempt.
func (m *Manager) Unlock() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("audio: manager closed")
	}

	m.unlocked = true
	if err := m.initInternal(); err != nil {
		return err
	}

	for _, src := range m.pending {
		m.play(src)
	}
	m.pending = nil
	return nil
}

func (m *Manager) play(src *Source) {
	src.mu.Lock()
	if src.stopped {
		src.mu.Unlock()
		return
	}
	src.playing = true
	src.mu.Unlock()
	speaker.Play(src.vol)
}

// Sources returns the currently registered sources.
func (m *Manager) Sources() []*Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Source, len(m.sources))
	copy(out, m.sources)
	return out
}

// Close stops every started voice exactly once and shuts the speaker
// down. Safe to call repeatedly and after a failed Init.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true

	for _, src := range m.sources {
		src.mu.Lock()
		src.stopInternal()
		src.mu.Unlock()
	}
	m.pending = nil

	if m.initialized {
		speaker.Clear()
		m.initialized = false
	}
}

// loopBuffer streams a mono sample buffer as stereo, restarting from the
// beginning when it runs out, the infinite loop the garden ambience
// relies on.
type loopBuffer struct {
	samples []float64
	pos     int
}

func (l *loopBuffer) Stream(out [][2]float64) (int, bool) {
	for i := range out {
		s := l.samples[l.pos]
		out[i][0] = s
		out[i][1] = s
		l.pos++
		if l.pos == len(l.samples) {
			l.pos = 0
		}
	}
	return len(out), true
}

func (l *loopBuffer) Err() error { return nil }

// volumeToDb converts a 0-1 volume to the decibel scale effects.Volume
// expects with Base 2.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * gomath.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
