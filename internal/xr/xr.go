// Package xr gates entry into immersive display modes. The desktop build
// carries no headset driver, so every entry attempt resolves to a clean,
// reported fallback to the windowed view rather than a partial session.
package xr

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/oliviahylam/zen-garden/internal/logger"
)

// Mode is an immersive display mode.
type Mode int

const (
	// ModeNone is the ordinary windowed view.
	ModeNone Mode = iota
	// ModeVR is a fully immersive headset session.
	ModeVR
	// ModeAR is a passthrough session over the real surroundings.
	ModeAR
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeVR:
		return "vr"
	case ModeAR:
		return "ar"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrUnsupported reports that no driver can serve the requested mode.
// Callers treat it as the signal to stay in the windowed view.
var ErrUnsupported = errors.New("xr: mode not supported")

// Driver is a backend capable of hosting immersive sessions.
type Driver interface {
	// Supports reports whether the driver can open the given mode.
	Supports(mode Mode) bool
	// Begin opens a session. A non-nil error must leave the driver idle.
	Begin(mode Mode) error
	// End closes the active session. Called only after a successful Begin.
	End() error
}

// Manager tracks the active display mode. Enter either fully succeeds or
// leaves the manager in ModeNone; there is no intermediate state.
type Manager struct {
	mu     sync.Mutex
	driver Driver
	active Mode
}

// NewManager creates a manager over the given driver. A nil driver is
// valid and makes every Enter fail with ErrUnsupported.
func NewManager(driver Driver) *Manager {
	return &Manager{driver: driver}
}

// Active returns the current display mode.
func (m *Manager) Active() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Enter attempts to switch into the given immersive mode. On any failure
// the manager stays in (or returns to) ModeNone and the error says why.
func (m *Manager) Enter(mode Mode) error {
	if mode == ModeNone {
		return fmt.Errorf("xr: cannot enter %s, use Exit", mode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != ModeNone {
		return fmt.Errorf("xr: already in %s session", m.active)
	}
	if m.driver == nil || !m.driver.Supports(mode) {
		logger.Info("immersive mode unavailable, staying windowed", zap.Stringer("mode", mode))
		return fmt.Errorf("%w: %s", ErrUnsupported, mode)
	}

	if err := m.driver.Begin(mode); err != nil {
		m.active = ModeNone
		return fmt.Errorf("xr: begin %s: %w", mode, err)
	}

	m.active = mode
	logger.Info("entered immersive mode", zap.Stringer("mode", mode))
	return nil
}

// Exit leaves any active immersive session. Safe to call when already
// windowed. The manager is in ModeNone afterwards even if the driver's
// End reports an error.
func (m *Manager) Exit() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == ModeNone {
		return nil
	}

	mode := m.active
	m.active = ModeNone

	if err := m.driver.End(); err != nil {
		return fmt.Errorf("xr: end %s: %w", mode, err)
	}
	logger.Info("left immersive mode", zap.Stringer("mode", mode))
	return nil
}
