package rig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/portfolio-room/internal/engine/audio/cue"
	"github.com/Faultbox/portfolio-room/internal/engine/camera"
	"github.com/Faultbox/portfolio-room/internal/engine/picking"
	"github.com/Faultbox/portfolio-room/internal/interact"
	"github.com/Faultbox/portfolio-room/internal/interaction"
	"github.com/Faultbox/portfolio-room/internal/preset"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

type spySound struct {
	cues []cue.Cue
}

func (s *spySound) PlaySound(c cue.Cue) {
	s.cues = append(s.cues, c)
}

func (s *spySound) count(want cue.Cue) int {
	n := 0
	for _, c := range s.cues {
		if c == want {
			n++
		}
	}
	return n
}

const frame = 16 * time.Millisecond

func newRig(t *testing.T, cfg Config) (*Rig, *interaction.Store, *spySound) {
	t.Helper()
	store := interaction.New()
	sound := &spySound{}
	r := New(store, camera.NewOrbitControls(), sound, cfg)
	t.Cleanup(r.Close)
	return r, store, sound
}

// settle runs frames until the rig is idle with nothing pending.
func settle(t *testing.T, r *Rig) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		r.Update(frame)
		if r.Phase() == Idle && r.pending == nil {
			return
		}
	}
	t.Fatal("rig never settled")
}

// recordAnimating logs every change of the animating flag.
func recordAnimating(store *interaction.Store) *[]bool {
	var seen []bool
	store.Subscribe(func(c interaction.Change) {
		if c.Action == interaction.ActionSetCameraAnimating && c.Prev.CameraAnimating != c.Next.CameraAnimating {
			seen = append(seen, c.Next.CameraAnimating)
		}
	})
	return &seen
}

func TestInitialLoadFliesSilentlyToStorePreset(t *testing.T) {
	r, store, sound := newRig(t, DefaultConfig())

	r.Update(0)
	assert.Equal(t, Transitioning, r.Phase())
	assert.True(t, store.IsCameraAnimating())
	assert.False(t, r.Controls().Enabled())

	settle(t, r)
	ov := preset.Get(preset.Overview)
	assert.True(t, r.Controls().Position().ApproxEqual(ov.Position, 1e-4))
	assert.True(t, r.Controls().Target().ApproxEqual(ov.LookAt, 1e-4))
	assert.True(t, r.Controls().Enabled())
	assert.False(t, store.IsCameraAnimating())
	assert.Equal(t, preset.None, store.ActiveTarget())
	assert.Empty(t, sound.cues)
}

func TestBookshelfClickEndToEnd(t *testing.T) {
	r, store, sound := newRig(t, DefaultConfig())
	settle(t, r)

	animating := recordAnimating(store)
	var activeWhileAnimating bool
	store.Subscribe(func(c interaction.Change) {
		if c.Action == interaction.ActionSetActiveTarget && c.Next.CameraAnimating {
			activeWhileAnimating = true
		}
	})

	proto := interact.NewProtocol(store, nil, nil, sound)
	tracker := interact.NewTracker(proto, interact.DefaultDragThreshold)
	shelf := interact.CameraRoute("bookshelf", preset.Bookshelf,
		picking.Box(math.V3(-3.8, 1.2, 0), math.V3(0.4, 2.4, 1.6)))
	tracker.Add(shelf)

	ray := picking.Ray{Origin: math.V3(0, 1.2, 0), Direction: math.V3(-1, 0, 0)}
	tracker.PointerDown(200, 200, ray)
	require.True(t, tracker.PointerUp(201, 200, ray))
	assert.Equal(t, preset.Bookshelf, store.CameraPreset())
	assert.Equal(t, preset.None, store.ActiveTarget(), "overlay must wait for arrival")

	r.Update(0)
	assert.True(t, store.IsCameraAnimating())
	assert.Equal(t, 1, sound.count(cue.Whoosh))

	r.Update(600 * time.Millisecond)
	assert.True(t, store.IsCameraAnimating())
	assert.Equal(t, preset.None, store.ActiveTarget())

	r.Update(600 * time.Millisecond)
	assert.False(t, store.IsCameraAnimating())
	assert.Equal(t, preset.Skills, store.ActiveTarget())
	assert.Equal(t, Idle, r.Phase())

	assert.Equal(t, []bool{true, false}, *animating)
	assert.False(t, activeWhileAnimating)

	want := preset.Get(preset.Bookshelf)
	assert.True(t, r.Controls().Position().ApproxEqual(want.Position, 1e-4))
	assert.Equal(t, want.OrbitConstraints(), r.Controls().Limits())
}

func TestInterruptedFlightHandsOverWithoutSnap(t *testing.T) {
	r, store, sound := newRig(t, DefaultConfig())
	settle(t, r)
	animating := recordAnimating(store)

	store.SetCameraPreset(preset.Desk)
	r.Update(0)
	r.Update(600 * time.Millisecond)
	mid := r.Controls().Position()

	store.SetCameraPreset(preset.Bookshelf)
	r.Update(0)
	dest, ok := r.Destination()
	require.True(t, ok)
	assert.Equal(t, preset.Bookshelf, dest)
	assert.True(t, r.Controls().Position().ApproxEqual(mid, 1e-5), "restart must begin at the live pose")

	r.Update(frame)
	assert.Less(t, r.Controls().Position().Distance(mid), float32(0.5))

	settle(t, r)
	assert.Equal(t, preset.Skills, store.ActiveTarget())
	assert.Equal(t, []bool{true, false}, *animating, "flag stays set across the handover")
	assert.Equal(t, 2, sound.count(cue.Whoosh))
}

func TestPendingRequestsCollapseToLatest(t *testing.T) {
	r, store, _ := newRig(t, DefaultConfig())
	settle(t, r)

	store.SetCameraPreset(preset.Desk)
	store.SetCameraPreset(preset.Bed)
	r.Update(0)

	dest, ok := r.Destination()
	require.True(t, ok)
	assert.Equal(t, preset.Bed, dest)
}

func TestControlsLockedDuringFlight(t *testing.T) {
	r, store, _ := newRig(t, DefaultConfig())
	settle(t, r)

	store.SetCameraPreset(preset.Window)
	r.Update(0)
	before := r.Controls().Position()
	r.Controls().HandleDrag(300, 100)
	r.Controls().HandleZoom(5)
	assert.Equal(t, before, r.Controls().Position())

	settle(t, r)
	assert.True(t, r.Controls().Enabled())
	assert.InDelta(t, 45, r.Controls().FOV, 1e-4)
}

func TestEscapeReturnsToOverview(t *testing.T) {
	r, store, sound := newRig(t, DefaultConfig())
	settle(t, r)
	assert.False(t, r.HandleEscape(), "nothing to close at overview")

	store.SetCameraPreset(preset.Bed)
	settle(t, r)
	require.Equal(t, preset.About, store.ActiveTarget())
	whooshes := sound.count(cue.Whoosh)

	assert.True(t, r.HandleEscape())
	assert.Equal(t, preset.None, store.ActiveTarget())
	assert.Equal(t, preset.Overview, store.CameraPreset())

	settle(t, r)
	assert.Equal(t, preset.None, store.ActiveTarget())
	assert.Equal(t, whooshes, sound.count(cue.Whoosh), "no whoosh towards overview")
	assert.True(t, r.Controls().Position().ApproxEqual(preset.Get(preset.Overview).Position, 1e-4))
}

func TestEscapeClosesDirectOverlayAtOverview(t *testing.T) {
	r, store, _ := newRig(t, DefaultConfig())
	settle(t, r)

	store.SetActiveTarget(preset.About)
	assert.True(t, r.HandleEscape())
	assert.Equal(t, preset.None, store.ActiveTarget())
}

func TestReselect(t *testing.T) {
	tests := []struct {
		name       string
		restart    bool
		wantPhase  Phase
		wantWhoosh int
	}{
		{"restarts by default", true, Transitioning, 2},
		{"ignored when disabled", false, Idle, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RestartOnReselect = tt.restart
			r, store, sound := newRig(t, cfg)
			settle(t, r)

			store.SetCameraPreset(preset.Desk)
			settle(t, r)

			store.SetCameraPreset(preset.Desk)
			r.Update(0)
			assert.Equal(t, tt.wantPhase, r.Phase())
			assert.Equal(t, tt.wantWhoosh, sound.count(cue.Whoosh))

			settle(t, r)
			assert.Equal(t, preset.Projects, store.ActiveTarget())
		})
	}
}

func TestZeroDurationArrivesImmediately(t *testing.T) {
	r, store, _ := newRig(t, Config{FlyDuration: 0, RestartOnReselect: true})
	r.Update(0)
	assert.Equal(t, Idle, r.Phase())

	store.SetCameraPreset(preset.Window)
	r.Update(0)
	assert.Equal(t, Idle, r.Phase())
	assert.False(t, store.IsCameraAnimating())
	assert.Equal(t, preset.Contact, store.ActiveTarget())
}

func TestCloseDetachesFromStore(t *testing.T) {
	r, store, _ := newRig(t, DefaultConfig())
	settle(t, r)
	r.Close()

	store.SetCameraPreset(preset.Desk)
	r.Update(0)
	assert.Equal(t, Idle, r.Phase())
}

func TestFlightEasing(t *testing.T) {
	f := &flight{
		to:         preset.Get(preset.Desk),
		fromPos:    math.V3(0, 0, 0),
		fromTarget: math.V3(0, 0, 0),
		fromFOV:    60,
		duration:   time.Second,
	}

	assert.False(t, f.step(500*time.Millisecond))
	pos, _, fov := f.pose()
	// ease-out cubic at 0.5 is 0.875
	want := f.to.Position.Scale(0.875)
	assert.True(t, pos.ApproxEqual(want, 1e-4), "pos = %v, want %v", pos, want)
	assert.InDelta(t, 60+(45-60)*0.875, fov, 1e-4)

	assert.True(t, f.step(600*time.Millisecond))
	pos, _, _ = f.pose()
	assert.True(t, pos.ApproxEqual(f.to.Position, 1e-6))
}
