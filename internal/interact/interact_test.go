package interact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/portfolio-room/internal/engine/audio/cue"
	"github.com/Faultbox/portfolio-room/internal/engine/picking"
	"github.com/Faultbox/portfolio-room/internal/interaction"
	"github.com/Faultbox/portfolio-room/internal/preset"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

type fakeCursor struct {
	pointer bool
	calls   int
}

func (c *fakeCursor) SetPointer(pointer bool) {
	c.pointer = pointer
	c.calls++
}

type fakeLinks struct {
	opened []string
	err    error
}

func (l *fakeLinks) Open(url string) error {
	l.opened = append(l.opened, url)
	return l.err
}

type spySound struct {
	cues []cue.Cue
}

func (s *spySound) PlaySound(c cue.Cue) {
	s.cues = append(s.cues, c)
}

type fixture struct {
	store  *interaction.Store
	cursor *fakeCursor
	links  *fakeLinks
	sound  *spySound
	proto  *Protocol
}

func newFixture() *fixture {
	f := &fixture{
		store:  interaction.New(),
		cursor: &fakeCursor{},
		links:  &fakeLinks{},
		sound:  &spySound{},
	}
	f.proto = NewProtocol(f.store, f.cursor, f.links, f.sound)
	return f
}

func unitBox(x float32) picking.AABB {
	return picking.Box(math.V3(x, 0, 0), math.V3(1, 1, 1))
}

func TestHoverEnterAndLeave(t *testing.T) {
	f := newFixture()
	shelf := CameraRoute("bookshelf", preset.Bookshelf, unitBox(0))

	f.proto.PointerEnter(shelf)
	assert.Equal(t, preset.Skills, f.store.HoveredTarget())
	assert.True(t, f.cursor.pointer)
	assert.Equal(t, []cue.Cue{cue.Hover}, f.sound.cues)

	f.proto.PointerLeave(shelf)
	assert.Equal(t, preset.None, f.store.HoveredTarget())
	assert.False(t, f.cursor.pointer)
}

func TestHoverLastEnteredWins(t *testing.T) {
	f := newFixture()
	desk := CameraRoute("desk", preset.Desk, unitBox(0))
	bed := CameraRoute("bed", preset.Bed, unitBox(2))

	// Overlapping geometry: B is entered before A reports its leave.
	f.proto.PointerEnter(desk)
	f.proto.PointerEnter(bed)
	assert.Equal(t, preset.About, f.store.HoveredTarget())

	f.proto.PointerLeave(desk)
	assert.Equal(t, preset.About, f.store.HoveredTarget(), "leaving A must not clear B's hover")
	assert.True(t, f.cursor.pointer, "cursor stays a pointer while B is hovered")

	f.proto.PointerLeave(bed)
	assert.Equal(t, preset.None, f.store.HoveredTarget())
	assert.False(t, f.cursor.pointer)
}

func TestClickByKind(t *testing.T) {
	tests := []struct {
		name       string
		object     *Object
		wantPreset preset.Name
		wantActive preset.Target
		wantCues   []cue.Cue
		wantLinks  []string
	}{
		{
			name:       "camera routed requests preset only",
			object:     CameraRoute("desk", preset.Desk, unitBox(0)),
			wantPreset: preset.Desk,
			wantActive: preset.None,
			wantCues:   []cue.Cue{cue.Click},
		},
		{
			name:       "direct overlay opens immediately",
			object:     Overlay("nameplate", preset.About, unitBox(0)),
			wantPreset: preset.Overview,
			wantActive: preset.About,
			wantCues:   []cue.Cue{cue.Click},
		},
		{
			name:       "hover only does nothing",
			object:     Hoverable("hologram", preset.Skills, unitBox(0)),
			wantPreset: preset.Overview,
			wantActive: preset.None,
		},
		{
			name:       "external link leaves state alone",
			object:     Link("github", preset.Contact, "https://github.com/example", unitBox(0)),
			wantPreset: preset.Overview,
			wantActive: preset.None,
			wantCues:   []cue.Cue{cue.Click},
			wantLinks:  []string{"https://github.com/example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.proto.Click(tt.object)

			assert.Equal(t, tt.wantPreset, f.store.CameraPreset())
			assert.Equal(t, tt.wantActive, f.store.ActiveTarget())
			assert.Equal(t, tt.wantCues, f.sound.cues)
			assert.Equal(t, tt.wantLinks, f.links.opened)
			assert.False(t, f.store.IsCameraAnimating())
		})
	}
}

func TestLinkFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.links.err = errors.New("no browser")

	f.proto.Click(Link("linkedin", preset.Contact, "https://linkedin.com/in/example", unitBox(0)))
	assert.Equal(t, interaction.DefaultState(), f.store.State())
}

func TestHoverSharedTargetTracksObject(t *testing.T) {
	f := newFixture()
	first := Hoverable("hologram-go", preset.Skills, unitBox(0))
	second := Hoverable("hologram-gl", preset.Skills, unitBox(2))

	// Both report the same target; only the object that owns the hover may clear it.
	f.proto.PointerEnter(first)
	f.proto.PointerEnter(second)
	f.proto.PointerLeave(first)
	assert.Equal(t, preset.Skills, f.store.HoveredTarget())
	assert.True(t, f.cursor.pointer, "leaving the first hologram must not reset the cursor")

	f.proto.PointerLeave(second)
	assert.Equal(t, preset.None, f.store.HoveredTarget())
	assert.False(t, f.cursor.pointer)

	// A late leave after everything is cleared only restores the cursor.
	f.proto.PointerLeave(first)
	assert.Equal(t, preset.None, f.store.HoveredTarget())
	assert.False(t, f.cursor.pointer)
}

func TestNilCollaborators(t *testing.T) {
	store := interaction.New()
	p := NewProtocol(store, nil, nil, nil)
	o := Link("github", preset.Contact, "https://github.com/example", unitBox(0))

	p.PointerEnter(o)
	p.Click(o)
	p.PointerLeave(o)
	assert.Equal(t, preset.None, store.HoveredTarget())
}

// rayAt aims straight down -Z at x.
func rayAt(x float32) picking.Ray {
	return picking.Ray{Origin: math.V3(x, 0, 10), Direction: math.V3(0, 0, -1)}
}

func TestTrackerHoverFollowsPointer(t *testing.T) {
	f := newFixture()
	tr := NewTracker(f.proto, 0)
	desk := CameraRoute("desk", preset.Desk, unitBox(0))
	bed := CameraRoute("bed", preset.Bed, unitBox(3))
	tr.Add(desk, bed)

	tr.PointerMove(rayAt(0))
	assert.Same(t, desk, tr.Hovered())
	assert.Equal(t, preset.Projects, f.store.HoveredTarget())

	tr.PointerMove(rayAt(3))
	assert.Same(t, bed, tr.Hovered())
	assert.Equal(t, preset.About, f.store.HoveredTarget())

	tr.PointerMove(rayAt(10))
	assert.Nil(t, tr.Hovered())
	assert.Equal(t, preset.None, f.store.HoveredTarget())

	// Only one hover cue per enter
	assert.Equal(t, []cue.Cue{cue.Hover, cue.Hover}, f.sound.cues)
}

func TestTrackerPicksNearest(t *testing.T) {
	f := newFixture()
	tr := NewTracker(f.proto, 0)
	far := Hoverable("far", preset.Skills, picking.Box(math.V3(0, 0, -5), math.V3(1, 1, 1)))
	near := Hoverable("near", preset.About, picking.Box(math.V3(0, 0, 0), math.V3(1, 1, 1)))
	tr.Add(far, near)

	assert.Same(t, near, tr.Pick(rayAt(0)))
}

func TestTrackerClickVersusDrag(t *testing.T) {
	tests := []struct {
		name      string
		upX, upY  int
		upRay     float32
		wantClick bool
	}{
		{"still", 100, 100, 0, true},
		{"within threshold", 103, 104, 0, true},
		{"dragged", 110, 100, 0, false},
		{"released elsewhere", 100, 100, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tr := NewTracker(f.proto, DefaultDragThreshold)
			tr.Add(CameraRoute("desk", preset.Desk, unitBox(0)))

			tr.PointerDown(100, 100, rayAt(0))
			got := tr.PointerUp(tt.upX, tt.upY, rayAt(tt.upRay))
			assert.Equal(t, tt.wantClick, got)

			want := preset.Overview
			if tt.wantClick {
				want = preset.Desk
			}
			assert.Equal(t, want, f.store.CameraPreset())
		})
	}
}

func TestTrackerUpWithoutDown(t *testing.T) {
	f := newFixture()
	tr := NewTracker(f.proto, 0)
	tr.Add(CameraRoute("desk", preset.Desk, unitBox(0)))
	assert.False(t, tr.PointerUp(0, 0, rayAt(0)))
}

func TestTrackerRemoveClearsHover(t *testing.T) {
	f := newFixture()
	tr := NewTracker(f.proto, 0)
	tr.Add(CameraRoute("desk", preset.Desk, unitBox(0)), CameraRoute("bed", preset.Bed, unitBox(3)))

	tr.PointerMove(rayAt(0))
	require.Equal(t, preset.Projects, f.store.HoveredTarget())

	tr.Remove("desk")
	assert.Nil(t, tr.Hovered())
	assert.Equal(t, preset.None, f.store.HoveredTarget())
	assert.False(t, f.cursor.pointer)
	assert.Len(t, tr.Objects(), 1)
}

func TestTrackerPointerExit(t *testing.T) {
	f := newFixture()
	tr := NewTracker(f.proto, 0)
	tr.Add(Hoverable("hologram", preset.Skills, unitBox(0)))

	tr.PointerMove(rayAt(0))
	tr.PointerExit()
	assert.Equal(t, preset.None, f.store.HoveredTarget())
}

func TestIsClick(t *testing.T) {
	assert.True(t, IsClick(0, 0, 3, 4, 5))
	assert.False(t, IsClick(0, 0, 4, 4, 5))
}

func TestSystemBrowserRejectsSchemes(t *testing.T) {
	var launched []string
	b := SystemBrowser{open: func(url string) error {
		launched = append(launched, url)
		return nil
	}}

	assert.Error(t, b.Open("file:///etc/passwd"))
	assert.Error(t, b.Open("javascript:alert(1)"))
	assert.Empty(t, launched)

	require.NoError(t, b.Open("https://github.com/example"))
	require.NoError(t, b.Open("mailto:hello@example.com"))
	assert.Equal(t, []string{"https://github.com/example", "mailto:hello@example.com"}, launched)
}

func TestSystemBrowserWrapsLauncherError(t *testing.T) {
	b := SystemBrowser{open: func(string) error { return errors.New("no handler") }}
	err := b.Open("https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
}
