package game

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/portfolio-room/internal/engine/debug"
	"github.com/Faultbox/portfolio-room/internal/hud"
	"github.com/Faultbox/portfolio-room/internal/room"
)

func TestHudKey(t *testing.T) {
	tests := []struct {
		sc   sdl.Scancode
		want hud.Key
	}{
		{sdl.SCANCODE_1, hud.KeyNav1},
		{sdl.SCANCODE_4, hud.KeyNav4},
		{sdl.SCANCODE_M, hud.KeyMute},
		{sdl.SCANCODE_ESCAPE, hud.KeyEscape},
		{sdl.SCANCODE_Q, hud.KeyNone},
	}
	for _, tt := range tests {
		if got := hudKey(tt.sc); got != tt.want {
			t.Errorf("hudKey(%d) = %d, want %d", tt.sc, got, tt.want)
		}
	}
}

func TestMovementAxes(t *testing.T) {
	held := map[sdl.Scancode]bool{sdl.SCANCODE_W: true, sdl.SCANCODE_A: true}
	forward, right := movementAxes(func(sc sdl.Scancode) bool { return held[sc] })
	if forward != 1 || right != -1 {
		t.Errorf("movementAxes = (%v, %v), want (1, -1)", forward, right)
	}

	held[sdl.SCANCODE_S] = true
	forward, _ = movementAxes(func(sc sdl.Scancode) bool { return held[sc] })
	if forward != 0 {
		t.Errorf("opposite keys should cancel, got forward %v", forward)
	}
}

func TestSceneBoxesHighlightHovered(t *testing.T) {
	r := room.New(room.DefaultLinks())
	shelf, ok := r.Object("bookshelf")
	if !ok {
		t.Fatal("missing bookshelf object")
	}

	boxes := sceneBoxes(r, shelf)
	if len(boxes) != len(r.Props) {
		t.Fatalf("got %d boxes for %d props", len(boxes), len(r.Props))
	}
	for i, p := range r.Props {
		want := float32(0)
		if p.Object == "bookshelf" {
			want = 1
		}
		if boxes[i].Highlight != want {
			t.Errorf("prop %s highlight = %v, want %v", p.ID, boxes[i].Highlight, want)
		}
	}

	for _, b := range sceneBoxes(r, nil) {
		if b.Highlight != 0 {
			t.Error("nothing hovered, nothing highlighted")
		}
	}
}

func TestObjectBoundsOutlinesEveryObject(t *testing.T) {
	r := room.New(room.DefaultLinks())
	got := objectBounds(r.Objects)
	if want := len(r.Objects) * debug.BBoxWireframeVertexCount * 3; len(got) != want {
		t.Errorf("len(objectBounds) = %d, want %d", len(got), want)
	}
}
