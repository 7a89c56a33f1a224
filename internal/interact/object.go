// Package interact lets scene objects take part in hover and click handling
// uniformly. Each Object declares what a click does; the Protocol applies the
// shared hover/click rules and the Tracker decides which object is under the
// pointer.
package interact

import (
	"github.com/Faultbox/portfolio-room/internal/engine/picking"
	"github.com/Faultbox/portfolio-room/internal/preset"
)

// Kind selects what a click on an object does.
type Kind int

const (
	// CameraRouted flies the camera to a preset; the rig opens the overlay on arrival.
	CameraRouted Kind = iota
	// DirectOverlay opens the overlay immediately without moving the camera.
	DirectOverlay
	// HoverOnly reveals information on hover; clicks do nothing.
	HoverOnly
	// ExternalLink opens a URL and leaves interaction state alone.
	ExternalLink
)

func (k Kind) String() string {
	switch k {
	case CameraRouted:
		return "camera-routed"
	case DirectOverlay:
		return "direct-overlay"
	case HoverOnly:
		return "hover-only"
	case ExternalLink:
		return "external-link"
	default:
		return "unknown"
	}
}

// Object is a clickable or hoverable thing in the scene.
type Object struct {
	ID     string
	Kind   Kind
	Target preset.Target
	Bounds picking.AABB

	// Preset is set for CameraRouted objects.
	Preset preset.Name
	// URL is set for ExternalLink objects.
	URL string
}

// CameraRoute builds an object that flies the camera to name on click.
// Its target is the overlay the preset frames.
func CameraRoute(id string, name preset.Name, bounds picking.AABB) *Object {
	return &Object{
		ID:     id,
		Kind:   CameraRouted,
		Target: preset.ToTarget(name),
		Preset: name,
		Bounds: bounds,
	}
}

// Overlay builds an object that opens target directly on click.
func Overlay(id string, target preset.Target, bounds picking.AABB) *Object {
	return &Object{ID: id, Kind: DirectOverlay, Target: target, Bounds: bounds}
}

// Hoverable builds a hover-only object.
func Hoverable(id string, target preset.Target, bounds picking.AABB) *Object {
	return &Object{ID: id, Kind: HoverOnly, Target: target, Bounds: bounds}
}

// Link builds an object that opens url in the browser on click.
func Link(id string, target preset.Target, url string, bounds picking.AABB) *Object {
	return &Object{ID: id, Kind: ExternalLink, Target: target, URL: url, Bounds: bounds}
}
