// Package interaction holds the shared state every part of the room reads and
// writes: the open overlay, the hovered object, the selected camera preset and
// whether the camera is mid-flight.
package interaction

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/logger"
	"github.com/Faultbox/portfolio-room/internal/preset"
)

// State is a snapshot of the shared interaction state.
type State struct {
	ActiveTarget    preset.Target
	HoveredTarget   preset.Target
	CameraPreset    preset.Name
	CameraAnimating bool
}

// DefaultState is the state at startup: nothing open, nothing hovered, overview.
func DefaultState() State {
	return State{
		ActiveTarget:  preset.None,
		HoveredTarget: preset.None,
		CameraPreset:  preset.Overview,
	}
}

// Action names the mutator that produced a Change.
type Action int

const (
	ActionSetActiveTarget Action = iota
	ActionSetHoveredTarget
	ActionSetCameraPreset
	ActionSetCameraAnimating
	ActionCloseOverlay
)

func (a Action) String() string {
	switch a {
	case ActionSetActiveTarget:
		return "setActiveTarget"
	case ActionSetHoveredTarget:
		return "setHoveredTarget"
	case ActionSetCameraPreset:
		return "setCameraPreset"
	case ActionSetCameraAnimating:
		return "setCameraAnimating"
	case ActionCloseOverlay:
		return "closeOverlay"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after every action, even when the action
// wrote the value already held.
type Change struct {
	Action Action
	Prev   State
	Next   State
}

// PresetRequested reports whether the change selects a camera preset, which
// is what the camera rig reacts to.
func (c Change) PresetRequested() bool {
	return c.Action == ActionSetCameraPreset || c.Action == ActionCloseOverlay
}

// Listener receives changes synchronously, after the write is committed.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Store is the single shared interaction state. It is created once by the
// application root and handed to every component that needs it.
type Store struct {
	mu    sync.RWMutex
	state State

	subMu  sync.Mutex
	subs   []subscription
	nextID int

	log *zap.Logger
}

// New creates a store holding DefaultState.
func New() *Store {
	return &Store{
		state: DefaultState(),
		log:   logger.Named("interaction"),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ActiveTarget returns the open overlay, or None.
func (s *Store) ActiveTarget() preset.Target {
	return s.State().ActiveTarget
}

// HoveredTarget returns the target under the pointer, or None.
func (s *Store) HoveredTarget() preset.Target {
	return s.State().HoveredTarget
}

// CameraPreset returns the selected camera preset.
func (s *Store) CameraPreset() preset.Name {
	return s.State().CameraPreset
}

// IsCameraAnimating reports whether a camera flight is in progress.
func (s *Store) IsCameraAnimating() bool {
	return s.State().CameraAnimating
}

// Subscribe registers fn for every subsequent change and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// SetActiveTarget opens the overlay for target. It does not move the camera.
func (s *Store) SetActiveTarget(target preset.Target) {
	s.apply(ActionSetActiveTarget, func(st *State) { st.ActiveTarget = target })
}

// SetHoveredTarget records the target under the pointer. Last writer wins.
func (s *Store) SetHoveredTarget(target preset.Target) {
	s.apply(ActionSetHoveredTarget, func(st *State) { st.HoveredTarget = target })
}

// SetCameraPreset selects a camera preset; the camera rig flies to it.
func (s *Store) SetCameraPreset(name preset.Name) {
	s.apply(ActionSetCameraPreset, func(st *State) { st.CameraPreset = name })
}

// SetCameraAnimating is written by the camera rig only.
func (s *Store) SetCameraAnimating(animating bool) {
	s.apply(ActionSetCameraAnimating, func(st *State) { st.CameraAnimating = animating })
}

// CloseOverlay clears the open overlay and returns the camera to overview in
// one write.
func (s *Store) CloseOverlay() {
	s.apply(ActionCloseOverlay, func(st *State) {
		st.ActiveTarget = preset.None
		st.CameraPreset = preset.Overview
	})
}

func (s *Store) apply(action Action, mutate func(*State)) {
	s.mu.Lock()
	prev := s.state
	mutate(&s.state)
	next := s.state
	s.mu.Unlock()

	if ce := s.log.Check(zap.DebugLevel, "store action"); ce != nil {
		ce.Write(
			zap.Stringer("action", action),
			zap.String("active", string(next.ActiveTarget)),
			zap.String("hovered", string(next.HoveredTarget)),
			zap.String("preset", string(next.CameraPreset)),
			zap.Bool("animating", next.CameraAnimating),
		)
	}

	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	change := Change{Action: action, Prev: prev, Next: next}
	for _, sub := range subs {
		sub.fn(change)
	}
}
