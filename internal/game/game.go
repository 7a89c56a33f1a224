// Package game implements the viewer's main loop and wires the room, the
// camera rig and the interaction store together.
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/config"
	"github.com/Faultbox/portfolio-room/internal/engine/audio"
	"github.com/Faultbox/portfolio-room/internal/engine/camera"
	"github.com/Faultbox/portfolio-room/internal/engine/debug"
	"github.com/Faultbox/portfolio-room/internal/engine/input"
	"github.com/Faultbox/portfolio-room/internal/engine/picking"
	"github.com/Faultbox/portfolio-room/internal/engine/renderer"
	"github.com/Faultbox/portfolio-room/internal/engine/ui2d"
	"github.com/Faultbox/portfolio-room/internal/engine/window"
	"github.com/Faultbox/portfolio-room/internal/hud"
	"github.com/Faultbox/portfolio-room/internal/interact"
	"github.com/Faultbox/portfolio-room/internal/interaction"
	"github.com/Faultbox/portfolio-room/internal/logger"
	"github.com/Faultbox/portfolio-room/internal/preset"
	"github.com/Faultbox/portfolio-room/internal/rig"
	"github.com/Faultbox/portfolio-room/internal/room"
)

// maxFrameTime caps dt so a stalled frame does not skip a whole flight.
const maxFrameTime = 100 * time.Millisecond

// Game is the main viewer instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	overlay  *ui2d.Renderer
	input    *input.Input

	store   *interaction.Store
	audio   *audio.Service
	rig     *rig.Rig
	tracker *interact.Tracker
	hud     *hud.HUD
	room    *room.Room

	// Debug aids: F3 outlines interactive objects, F12 saves a screenshot.
	showBounds  bool
	wantShot    bool
	screenshots *debug.ScreenshotCapture

	drag     dragState
	pointerX int
	pointerY int
	log      *zap.Logger
}

// dragState tracks a left-button press until it turns into an orbit drag.
type dragState struct {
	active   bool
	// onHUD is set when the press landed on the HUD; it never orbits.
	onHUD    bool
	orbiting bool
	startX   int
	startY   int
}

// New creates the window, renderer and scene. configPath is where the mute
// flag is written back; empty selects the user's config directory.
func New(cfg *config.Config, configPath string) (*Game, error) {
	g := &Game{
		cfg:         cfg,
		showBounds:  cfg.Logging.Level == "debug",
		screenshots: debug.NewScreenshotCapture(filepath.Join(config.ConfigDir(), "screenshots"), "room"),
		log:         logger.Named("game"),
	}

	start, err := cfg.StartPreset()
	if err != nil {
		return nil, err
	}

	g.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("start_preset", string(start)),
	)

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      hud.BaseTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := g.window.GetDrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ww, wh := g.window.GetSize()
	g.overlay, err = ui2d.New(ww, wh)
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to create HUD renderer: %w", err)
	}

	g.input = input.New()

	g.audio = audio.New(
		audio.WithMuteStore(config.NewMuteFlag(cfg, configPath)),
		audio.WithVolume(cfg.Audio.Volume),
	)

	g.store = interaction.New()
	g.store.SetCameraPreset(start)

	controls := camera.NewOrbitControls()
	ov := preset.Get(preset.Overview)
	controls.SetPose(ov.Position, ov.LookAt)
	controls.FOV = ov.FOV

	g.rig = rig.New(g.store, controls, g.audio, rig.Config{
		FlyDuration:       cfg.Camera.FlyDuration,
		RestartOnReselect: cfg.Camera.RestartOnReselect,
	})

	g.room = room.New(room.Links{GitHub: cfg.Links.GitHub, LinkedIn: cfg.Links.LinkedIn})
	g.renderer.SetLighting(g.room.Moon, g.room.Lights)
	proto := interact.NewProtocol(g.store, g.window, interact.SystemBrowser{}, g.audio)
	g.tracker = interact.NewTracker(proto, cfg.Camera.DragThresholdPx)
	g.tracker.Add(g.room.Objects...)

	g.hud = hud.New(g.store, g.audio, g.rig, g.window)

	g.log.Info("viewer initialized", zap.Int("objects", len(g.room.Objects)))
	return g, nil
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var minFrame time.Duration
	if g.cfg.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(g.cfg.Window.FPSLimit)
	}

	g.log.Info("starting main loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := min(now.Sub(lastTime), maxFrameTime)
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}
		g.handleEvents(g.input.Events())

		// 2. Update camera and rig
		g.update(dt)

		// 3. Render
		g.render()

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.hud != nil {
		g.hud.Close()
	}
	if g.rig != nil {
		g.rig.Close()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.overlay != nil {
		g.overlay.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			dw, dh := g.window.GetDrawableSize()
			g.renderer.Resize(dw, dh)
			g.overlay.Resize(g.window.GetSize())

		case input.EventMouseLeave:
			g.tracker.PointerExit()

		case input.EventMouseMove:
			g.pointerX, g.pointerY = event.MouseX, event.MouseY
			if g.drag.active && !g.drag.onHUD {
				if !g.drag.orbiting && !interact.IsClick(g.drag.startX, g.drag.startY, event.MouseX, event.MouseY, g.cfg.Camera.DragThresholdPx) {
					g.drag.orbiting = true
				}
				if g.drag.orbiting {
					g.rig.Controls().HandleDrag(float32(event.RelX), float32(event.RelY))
				}
			}
			if g.overHUD(event.MouseX, event.MouseY) {
				g.tracker.PointerExit()
				continue
			}
			g.tracker.PointerMove(g.ray(event.MouseX, event.MouseY))

		case input.EventMouseDown:
			if event.Button != sdl.BUTTON_LEFT {
				continue
			}
			g.drag = dragState{active: true, startX: event.MouseX, startY: event.MouseY}
			if g.overHUD(event.MouseX, event.MouseY) {
				g.drag.onHUD = true
				continue
			}
			g.tracker.PointerDown(event.MouseX, event.MouseY, g.ray(event.MouseX, event.MouseY))

		case input.EventMouseUp:
			if event.Button != sdl.BUTTON_LEFT {
				continue
			}
			drag := g.drag
			g.drag = dragState{}
			if drag.onHUD {
				if interact.IsClick(drag.startX, drag.startY, event.MouseX, event.MouseY, g.cfg.Camera.DragThresholdPx) {
					w, h := g.window.GetSize()
					g.hud.Click(float32(event.MouseX), float32(event.MouseY), float32(w), float32(h))
				}
				continue
			}
			g.tracker.PointerUp(event.MouseX, event.MouseY, g.ray(event.MouseX, event.MouseY))

		case input.EventMouseWheel:
			g.rig.Controls().HandleZoom(event.WheelY)

		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			switch event.Key {
			case sdl.SCANCODE_F3:
				g.showBounds = !g.showBounds
			case sdl.SCANCODE_F12:
				g.wantShot = true
			default:
				if k := hudKey(event.Key); k != hud.KeyNone {
					g.hud.HandleKey(k)
				}
			}
		}
	}
}

func (g *Game) update(dt time.Duration) {
	forward, right := movementAxes(g.input.IsKeyDown)
	if forward != 0 || right != 0 {
		g.rig.Controls().HandleMovement(forward, right, 0)
	}
	g.rig.Update(dt)
}

func (g *Game) render() {
	g.renderer.Begin()
	vp := g.rig.Controls().ViewProjection(g.renderer.Aspect())
	g.renderer.DrawBoxes(vp, sceneBoxes(g.room, g.tracker.Hovered()))
	if g.showBounds {
		g.renderer.DrawLines(vp, objectBounds(g.tracker.Objects()), boundsColor)
	}
	g.renderer.End()

	w, h := g.window.GetSize()
	g.overlay.Begin()
	g.hud.Draw(g.overlay, float32(w), float32(h), float32(g.pointerX), float32(g.pointerY))
	g.overlay.End()

	if g.wantShot {
		g.wantShot = false
		g.saveScreenshot()
	}
}

func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", name))
}

// overHUD reports whether window coordinates (x, y) are covered by the HUD.
func (g *Game) overHUD(x, y int) bool {
	w, h := g.window.GetSize()
	return g.hud.Blocks(float32(x), float32(y), float32(w), float32(h))
}

// ray returns the world ray under window coordinates (x, y).
func (g *Game) ray(x, y int) picking.Ray {
	w, h := g.window.GetSize()
	controls := g.rig.Controls()
	inv := controls.ViewProjection(float32(w) / float32(max(h, 1))).Inverse()
	return picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), inv)
}

// sceneBoxes converts the room props into boxes, lighting up the hovered object.
func sceneBoxes(r *room.Room, hovered *interact.Object) []renderer.Box {
	boxes := make([]renderer.Box, 0, len(r.Props))
	for _, p := range r.Props {
		b := renderer.Box{Center: p.Center, Size: p.Size, Color: p.Color}
		if hovered != nil && p.Object == hovered.ID {
			b.Highlight = 1
		}
		boxes = append(boxes, b)
	}
	return boxes
}

var boundsColor = [3]float32{0.2, 1, 0.4}

// objectBounds outlines every interactive object.
func objectBounds(objects []*interact.Object) []float32 {
	boxes := make([]picking.AABB, len(objects))
	for i, o := range objects {
		boxes[i] = o.Bounds
	}
	return debug.BoundsWireframe(boxes, debug.DefaultBBoxPadding)
}

// hudKey maps a scancode to a HUD shortcut.
func hudKey(sc sdl.Scancode) hud.Key {
	switch sc {
	case sdl.SCANCODE_1:
		return hud.KeyNav1
	case sdl.SCANCODE_2:
		return hud.KeyNav2
	case sdl.SCANCODE_3:
		return hud.KeyNav3
	case sdl.SCANCODE_4:
		return hud.KeyNav4
	case sdl.SCANCODE_M:
		return hud.KeyMute
	case sdl.SCANCODE_ESCAPE:
		return hud.KeyEscape
	}
	return hud.KeyNone
}

// movementAxes reads WASD into forward and right components.
func movementAxes(down func(sdl.Scancode) bool) (forward, right float32) {
	if down(sdl.SCANCODE_W) {
		forward++
	}
	if down(sdl.SCANCODE_S) {
		forward--
	}
	if down(sdl.SCANCODE_D) {
		right++
	}
	if down(sdl.SCANCODE_A) {
		right--
	}
	return forward, right
}
