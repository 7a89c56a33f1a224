// Package rig flies the camera between presets. It watches the interaction
// store for preset selections, locks user orbiting for the duration of the
// flight and opens the preset's overlay only once the camera has arrived.
package rig

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/engine/audio/cue"
	"github.com/Faultbox/portfolio-room/internal/engine/camera"
	"github.com/Faultbox/portfolio-room/internal/interaction"
	"github.com/Faultbox/portfolio-room/internal/logger"
	"github.com/Faultbox/portfolio-room/internal/preset"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

// DefaultFlyDuration is how long a fly-to takes.
const DefaultFlyDuration = 1200 * time.Millisecond

// SoundPlayer plays feedback cues.
type SoundPlayer interface {
	PlaySound(c cue.Cue)
}

// Phase is the rig's state.
type Phase int

const (
	// Idle: orbit controls enabled, nothing animating.
	Idle Phase = iota
	// Transitioning: orbit controls disabled, a flight is in progress.
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Config tunes the rig.
type Config struct {
	FlyDuration time.Duration
	// RestartOnReselect restarts the fly-to when the preset the camera already
	// rests on is selected again. When false that selection is ignored.
	RestartOnReselect bool
}

// DefaultConfig returns the default rig settings.
func DefaultConfig() Config {
	return Config{
		FlyDuration:       DefaultFlyDuration,
		RestartOnReselect: true,
	}
}

type request struct {
	name   preset.Name
	silent bool
}

// Rig owns the camera controls and runs flights between presets.
type Rig struct {
	store    *interaction.Store
	controls *camera.OrbitControls
	sound    SoundPlayer
	cfg      Config

	phase   Phase
	flight  *flight
	pending *request
	resting preset.Name

	unsubscribe func()
	log         *zap.Logger
}

// New creates a rig bound to store and controls. The first Update flies,
// silently, to whatever preset the store holds at that point.
// sound may be nil.
func New(store *interaction.Store, controls *camera.OrbitControls, sound SoundPlayer, cfg Config) *Rig {
	r := &Rig{
		store:    store,
		controls: controls,
		sound:    sound,
		cfg:      cfg,
		log:      logger.Named("rig"),
	}
	r.pending = &request{name: store.CameraPreset(), silent: true}
	r.unsubscribe = store.Subscribe(r.onChange)
	return r
}

// Close detaches the rig from the store.
func (r *Rig) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Phase returns the current state.
func (r *Rig) Phase() Phase {
	return r.phase
}

// Controls returns the orbit controls the rig drives.
func (r *Rig) Controls() *camera.OrbitControls {
	return r.controls
}

// Destination returns the preset being flown to, if a flight is running.
func (r *Rig) Destination() (preset.Name, bool) {
	if r.flight == nil {
		return "", false
	}
	return r.flight.to.Name, true
}

// onChange records the latest preset request. The flight itself starts on the
// next Update, and only the most recent request survives until then.
func (r *Rig) onChange(c interaction.Change) {
	if !c.PresetRequested() {
		return
	}
	name := c.Next.CameraPreset
	if !r.cfg.RestartOnReselect && r.phase == Idle && r.pending == nil && r.resting == name {
		r.log.Debug("preset reselected while at rest, ignoring", zap.String("preset", string(name)))
		return
	}
	r.pending = &request{name: name}
}

// Update advances the rig by one frame.
func (r *Rig) Update(dt time.Duration) {
	if r.pending != nil {
		req := *r.pending
		r.pending = nil
		r.start(req)
		return
	}
	if r.flight != nil {
		r.advance(dt)
	}
}

// HandleEscape closes the open overlay and returns to overview. It does
// nothing when the camera is already on overview with no overlay open.
func (r *Rig) HandleEscape() bool {
	st := r.store.State()
	if st.CameraPreset == preset.Overview && st.ActiveTarget == preset.None {
		return false
	}
	r.store.CloseOverlay()
	return true
}

func (r *Rig) start(req request) {
	to := preset.Get(req.name)

	if r.flight != nil {
		r.log.Debug("flight interrupted",
			zap.String("from", string(r.flight.to.Name)),
			zap.String("to", string(req.name)),
		)
	}

	r.flight = &flight{
		to:         to,
		fromPos:    r.controls.Position(),
		fromTarget: r.controls.Target(),
		fromFOV:    r.controls.FOV,
		duration:   r.cfg.FlyDuration,
	}
	r.controls.SetEnabled(false)
	r.resting = ""

	if r.phase != Transitioning {
		r.phase = Transitioning
		r.store.SetCameraAnimating(true)
	}

	if req.name != preset.Overview && !req.silent && r.sound != nil {
		r.sound.PlaySound(cue.Whoosh)
	}

	r.log.Debug("flight started",
		zap.String("preset", string(req.name)),
		zap.Float32("distance", r.flight.fromPos.Distance(to.Position)),
		zap.Duration("duration", r.cfg.FlyDuration),
	)

	if r.flight.duration <= 0 {
		r.advance(0)
	}
}

func (r *Rig) advance(dt time.Duration) {
	f := r.flight
	done := f.step(dt)

	pos, target, fov := f.pose()
	r.controls.SetPose(pos, target)
	r.controls.FOV = fov

	if done {
		r.complete()
	}
}

func (r *Rig) complete() {
	to := r.flight.to
	r.flight = nil
	r.phase = Idle
	r.resting = to.Name

	r.controls.SetPose(to.Position, to.LookAt)
	r.controls.SetEnabled(true)
	r.controls.SetLimits(to.OrbitConstraints())

	r.store.SetCameraAnimating(false)
	r.log.Info("camera arrived", zap.String("preset", string(to.Name)))

	// A listener may have requested another preset in the meantime; its flight
	// supersedes this overlay.
	if r.pending != nil {
		return
	}
	if to.Target.IsContent() {
		r.store.SetActiveTarget(to.Target)
	}
}

// flight is one fly-to in progress. It always starts from the live camera
// pose, so an interrupted flight hands over without snapping.
type flight struct {
	to         preset.Preset
	fromPos    math.Vec3
	fromTarget math.Vec3
	fromFOV    float32
	elapsed    time.Duration
	duration   time.Duration
}

// step advances elapsed time and reports whether the flight has finished.
func (f *flight) step(dt time.Duration) bool {
	f.elapsed += dt
	return f.progress() >= 1
}

func (f *flight) progress() float32 {
	if f.duration <= 0 {
		return 1
	}
	return math.Clamp(float32(f.elapsed.Seconds()/f.duration.Seconds()), 0, 1)
}

// pose returns the eased camera position, look-at point and FOV.
func (f *flight) pose() (pos, target math.Vec3, fov float32) {
	e := math.EaseOutCubic(f.progress())
	pos = f.fromPos.Lerp(f.to.Position, e)
	target = f.fromTarget.Lerp(f.to.LookAt, e)
	fov = f.fromFOV
	if f.to.HasFOV() {
		fov = math.Lerp(f.fromFOV, f.to.FOV, e)
	}
	return pos, target, fov
}
