// Package room lays out the props of the portfolio room and the interactive
// objects attached to them.
package room

import (
	"github.com/Faultbox/portfolio-room/internal/engine/lighting"
	"github.com/Faultbox/portfolio-room/internal/engine/picking"
	"github.com/Faultbox/portfolio-room/internal/interact"
	"github.com/Faultbox/portfolio-room/internal/preset"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

// Links are the external profiles the wall posters open.
type Links struct {
	GitHub   string
	LinkedIn string
}

// DefaultLinks returns placeholder profile links.
func DefaultLinks() Links {
	return Links{
		GitHub:   "https://github.com/",
		LinkedIn: "https://www.linkedin.com/",
	}
}

// Prop is a drawable box. Object names the interactive object it belongs to,
// if any, so it can be highlighted on hover.
type Prop struct {
	ID     string
	Center math.Vec3
	Size   math.Vec3
	Color  [3]float32
	Object string
}

// Room is the static scene.
type Room struct {
	Props   []Prop
	Objects []*interact.Object
	Lights  []lighting.PointLight
	// Moon is the direction towards the moonlight coming through the window.
	Moon math.Vec3
}

var (
	colorFloor  = [3]float32{0.45, 0.32, 0.22}
	colorWall   = [3]float32{0.30, 0.30, 0.42}
	colorWood   = [3]float32{0.55, 0.38, 0.24}
	colorDark   = [3]float32{0.12, 0.12, 0.14}
	colorScreen = [3]float32{0.20, 0.55, 0.85}
	colorBed    = [3]float32{0.35, 0.45, 0.70}
	colorWindow = [3]float32{0.55, 0.75, 0.95}
	colorPoster = [3]float32{0.85, 0.85, 0.80}
	colorAccent = [3]float32{0.95, 0.60, 0.25}
	colorHolo   = [3]float32{0.30, 0.95, 0.80}
)

// New builds the room.
func New(links Links) *Room {
	r := &Room{
		Lights: []lighting.PointLight{
			// Monitor glow
			{Position: math.V3(-2.5, 1.4, -3.5), Color: [3]float32{0.3, 0.6, 1.0}, Range: 2.5, Intensity: 0.8},
			// Bedside lamp
			{Position: math.V3(3.3, 1.2, -3.5), Color: [3]float32{1.0, 0.75, 0.45}, Range: 3, Intensity: 0.9},
			// Holograms
			{Position: math.V3(-3.4, 2.9, 0), Color: [3]float32{0.3, 0.95, 0.8}, Range: 1.5, Intensity: 0.6},
		},
	}
	// Moonlight falls in through the window on the back wall
	r.Moon = lighting.Direction(200, 35)

	// Shell
	r.prop("floor", "", math.V3(0, -0.05, 0), math.V3(8, 0.1, 8), colorFloor)
	r.prop("wall-back", "", math.V3(0, 1.5, -4.05), math.V3(8, 3, 0.1), colorWall)
	r.prop("wall-left", "", math.V3(-4.05, 1.5, 0), math.V3(0.1, 3, 8), colorWall)

	// Desk corner
	r.prop("desk", "desk", math.V3(-2.5, 0.375, -3.5), math.V3(1.6, 0.75, 0.8), colorWood)
	r.prop("monitor", "desk", math.V3(-2.5, 1.1, -3.7), math.V3(0.7, 0.45, 0.05), colorScreen)
	r.route("desk", preset.Desk, picking.Box(math.V3(-2.5, 0.7, -3.5), math.V3(1.6, 1.4, 0.9)))

	r.prop("nameplate", "nameplate", math.V3(-2.5, 0.8, -3.05), math.V3(0.4, 0.1, 0.05), colorAccent)
	r.Objects = append(r.Objects, interact.Overlay("nameplate", preset.About,
		picking.Box(math.V3(-2.5, 0.8, -3.05), math.V3(0.4, 0.1, 0.05))))

	// Bookshelf and skill holograms
	r.prop("bookshelf", "bookshelf", math.V3(-3.8, 1.2, 0), math.V3(0.4, 2.4, 1.6), colorWood)
	r.route("bookshelf", preset.Bookshelf, picking.Box(math.V3(-3.8, 1.2, 0), math.V3(0.4, 2.4, 1.6)))
	for i, z := range []float32{-0.5, 0, 0.5} {
		id := "hologram-" + string(rune('a'+i))
		center := math.V3(-3.4, 2.65, z)
		size := math.V3(0.2, 0.2, 0.2)
		r.prop(id, id, center, size, colorHolo)
		r.Objects = append(r.Objects, interact.Hoverable(id, preset.Skills, picking.Box(center, size)))
	}

	// Bed and nightstand
	r.prop("bed", "bed", math.V3(2.1, 0.3, -2.6), math.V3(1.6, 0.6, 2.4), colorBed)
	r.route("bed", preset.Bed, picking.Box(math.V3(2.1, 0.3, -2.6), math.V3(1.6, 0.6, 2.4)))
	r.prop("nightstand", "", math.V3(3.3, 0.3, -3.5), math.V3(0.5, 0.6, 0.5), colorWood)
	r.prop("phone", "phone", math.V3(3.3, 0.625, -3.5), math.V3(0.15, 0.05, 0.25), colorDark)
	r.route("phone", preset.Window, picking.Box(math.V3(3.3, 0.625, -3.5), math.V3(0.3, 0.15, 0.4)))

	// Window wall
	r.prop("window", "window", math.V3(0, 1.9, -3.98), math.V3(1.6, 1.2, 0.05), colorWindow)
	r.route("window", preset.Window, picking.Box(math.V3(0, 1.9, -3.98), math.V3(1.6, 1.2, 0.05)))
	r.link("poster-github", links.GitHub, math.V3(1.5, 1.9, -3.97), math.V3(0.5, 0.7, 0.03))
	r.link("poster-linkedin", links.LinkedIn, math.V3(-1.3, 2.0, -3.97), math.V3(0.4, 0.6, 0.03))

	return r
}

// Object returns the interactive object with the given ID.
func (r *Room) Object(id string) (*interact.Object, bool) {
	for _, o := range r.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

func (r *Room) prop(id, object string, center, size math.Vec3, color [3]float32) {
	r.Props = append(r.Props, Prop{ID: id, Center: center, Size: size, Color: color, Object: object})
}

func (r *Room) route(id string, name preset.Name, bounds picking.AABB) {
	r.Objects = append(r.Objects, interact.CameraRoute(id, name, bounds))
}

func (r *Room) link(id, url string, center, size math.Vec3) {
	r.prop(id, id, center, size, colorPoster)
	r.Objects = append(r.Objects, interact.Link(id, preset.Contact, url, picking.Box(center, size)))
}
