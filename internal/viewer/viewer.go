// Package viewer implements the interactive garden window: the frame
// loop, camera control, audio unlocking and teardown ordering.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/oliviahylam/zen-garden/internal/config"
	"github.com/oliviahylam/zen-garden/internal/engine/audio"
	"github.com/oliviahylam/zen-garden/internal/engine/camera"
	"github.com/oliviahylam/zen-garden/internal/engine/capture"
	"github.com/oliviahylam/zen-garden/internal/engine/input"
	"github.com/oliviahylam/zen-garden/internal/engine/renderer"
	"github.com/oliviahylam/zen-garden/internal/engine/window"
	"github.com/oliviahylam/zen-garden/internal/garden/session"
	"github.com/oliviahylam/zen-garden/internal/logger"
	"github.com/oliviahylam/zen-garden/internal/xr"
)

// Viewer is the running garden application.
type Viewer struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera

	audio   *audio.Manager
	session *session.Session
	xr      *xr.Manager

	capture     *capture.Capture
	pendingShot bool
	dragging    bool
}

// New creates the viewer: window and GL context first, then the renderer,
// then the garden session with its queued ambient voices.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{config: cfg}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Zen Garden",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.audio = audio.New(cfg.Audio.SampleRate)
	v.audio.SetMasterVolume(cfg.Audio.MasterVolume)
	v.audio.SetAmbientVolume(cfg.Audio.AmbientVolume)
	v.audio.SetMuted(cfg.Audio.Muted)
	// Non-fatal: voices stay queued and Unlock retries.
	if err := v.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	}

	v.session, err = session.New(cfg, v.audio)
	if err != nil {
		v.renderer.Close()
		v.window.Close()
		v.audio.Close()
		return nil, fmt.Errorf("failed to build garden: %w", err)
	}

	v.input = input.New()
	v.camera = camera.New()
	v.capture = capture.New("screenshots", "garden")
	// No headset driver on the desktop build; Enter reports unsupported
	// and the viewer stays windowed.
	v.xr = xr.NewManager(nil)

	logger.Info("viewer initialized", zap.Int64("seed", cfg.Scene.Seed))
	return v, nil
}

// Run starts the frame loop and blocks until quit.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		elapsed := now.Sub(start).Seconds()

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		v.camera.Update(dt)
		v.session.Update(elapsed, dt)

		v.renderer.Begin()
		v.renderer.DrawScene(v.session.Scene, v.camera, elapsed)

		if v.pendingShot {
			v.pendingShot = false
			pixels, w, h := v.renderer.ReadPixels()
			if name, err := v.capture.FromPixels(pixels, w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("file", name))
			}
		}

		v.window.SwapBuffers()

		frameCount++
		if v.config.Graphics.ShowFPS && time.Since(fpsTimer) >= time.Second {
			v.window.SetTitle(fmt.Sprintf("Zen Garden - %d fps", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		// The first deliberate interaction releases queued audio.
		if e.IsGesture() && !v.audio.Ready() {
			if err := v.audio.Unlock(); err != nil {
				logger.Warn("audio unlock failed", zap.Error(err))
			}
		}

		switch e.Type {
		case input.EventWindowResize:
			v.renderer.Resize(e.Width, e.Height)

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				v.dragging = true
			}
		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}
		case input.EventMouseMove:
			if v.dragging {
				v.camera.HandleDrag(float32(e.RelX), float32(e.RelY))
			}
		case input.EventMouseWheel:
			v.camera.HandleZoom(e.WheelY)

		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
				v.running = false
			case sdl.SCANCODE_M:
				v.config.Audio.Muted = !v.config.Audio.Muted
				v.audio.SetMuted(v.config.Audio.Muted)
			case sdl.SCANCODE_V:
				if err := v.xr.Enter(xr.ModeVR); err != nil {
					logger.Info("staying windowed", zap.Error(err))
				}
			case sdl.SCANCODE_F12:
				v.pendingShot = true
			}
		}
	}

	// Keyboard pan while keys are held.
	keys := sdl.GetKeyboardState()
	var forward, right float32
	if keys[sdl.SCANCODE_W] == 1 {
		forward++
	}
	if keys[sdl.SCANCODE_S] == 1 {
		forward--
	}
	if keys[sdl.SCANCODE_D] == 1 {
		right++
	}
	if keys[sdl.SCANCODE_A] == 1 {
		right--
	}
	if forward != 0 || right != 0 {
		v.camera.HandleMovement(forward, right, 0)
	}
}

// Close releases everything the viewer owns. Ordering matters: the
// session stops its voices first, then the audio manager shuts the
// speaker, then GL resources and the window go.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.xr != nil {
		if err := v.xr.Exit(); err != nil {
			logger.Warn("leaving immersive mode", zap.Error(err))
		}
	}
	if v.session != nil {
		v.session.Close()
	}
	if v.audio != nil {
		v.audio.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
