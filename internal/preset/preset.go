// Package preset holds the fixed camera poses of the room and the mapping
// between those poses and the content overlays they frame.
package preset

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/Faultbox/portfolio-room/internal/engine/camera"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

// Name identifies a camera preset.
type Name string

// Camera presets. The set is closed: every Name used anywhere must be one of these.
const (
	Overview  Name = "overview"
	Desk      Name = "desk"
	Bookshelf Name = "bookshelf"
	Bed       Name = "bed"
	Window    Name = "window"
)

// Target identifies a content area (overlay panel).
type Target string

// Content targets. None means no overlay is open and nothing is hovered.
const (
	None     Target = "none"
	About    Target = "about"
	Skills   Target = "skills"
	Projects Target = "projects"
	Contact  Target = "contact"
)

var (
	// ErrUnknownPreset is returned when parsing a name outside the preset set.
	ErrUnknownPreset = errors.New("unknown camera preset")
	// ErrUnknownTarget is returned when parsing a name outside the target set.
	ErrUnknownTarget = errors.New("unknown interaction target")
)

var (
	allNames   = []Name{Overview, Desk, Bookshelf, Bed, Window}
	allTargets = []Target{About, Skills, Projects, Contact}
)

// Constraints clamps free orbiting once the camera rests on a preset.
type Constraints = camera.Limits

// Preset is a fixed camera pose.
type Preset struct {
	Name     Name
	Position math.Vec3
	LookAt   math.Vec3
	// FOV in degrees; zero keeps the camera's current field of view.
	FOV float32
	// Constraints is nil when the preset leaves orbiting unconstrained.
	Constraints *Constraints
	Target      Target
}

// HasFOV reports whether the preset overrides the field of view.
func (p Preset) HasFOV() bool {
	return p.FOV > 0
}

// OrbitConstraints returns the preset's constraint bundle, or no limits at all.
func (p Preset) OrbitConstraints() Constraints {
	if p.Constraints == nil {
		return camera.Unlimited()
	}
	return *p.Constraints
}

// Get returns the preset for name. The preset set is closed and validated at
// startup, so an unknown name is a programming error and panics.
func Get(name Name) Preset {
	p, ok := table.presets[name]
	if !ok {
		panic(fmt.Sprintf("preset: %q is not in the preset table", name))
	}
	return p
}

// Lookup returns the preset for name and whether it exists.
func Lookup(name Name) (Preset, bool) {
	p, ok := table.presets[name]
	return p, ok
}

// Names returns every preset name in table order.
func Names() []Name {
	out := make([]Name, len(allNames))
	copy(out, allNames)
	return out
}

// Targets returns the content targets in navigation order. None is excluded.
func Targets() []Target {
	out := make([]Target, len(allTargets))
	copy(out, allTargets)
	return out
}

// ToTarget maps a preset to the overlay it frames. Overview maps to None.
func ToTarget(name Name) Target {
	return Get(name).Target
}

// FromTarget maps a content target back to the preset that frames it.
// None has no inverse.
func FromTarget(target Target) (Name, bool) {
	name, ok := table.inverse[target]
	return name, ok
}

// CameraPresets returns a copy of the whole preset table.
func CameraPresets() map[Name]Preset {
	out := make(map[Name]Preset, len(table.presets))
	for k, v := range table.presets {
		out[k] = v
	}
	return out
}

// PresetToTarget returns a copy of the preset -> target mapping.
func PresetToTarget() map[Name]Target {
	out := make(map[Name]Target, len(table.presets))
	for k, v := range table.presets {
		out[k] = v.Target
	}
	return out
}

// TargetToPreset returns a copy of the target -> preset mapping.
func TargetToPreset() map[Target]Name {
	out := make(map[Target]Name, len(table.inverse))
	for k, v := range table.inverse {
		out[k] = v
	}
	return out
}

// Parse converts a string (from config or flags) into a preset name.
func Parse(s string) (Name, error) {
	for _, n := range allNames {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// ParseTarget converts a string into a target.
func ParseTarget(s string) (Target, error) {
	if s == string(None) {
		return None, nil
	}
	for _, t := range allTargets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// IsContent reports whether t is a content target (anything but None).
func (t Target) IsContent() bool {
	return t != None && t != ""
}

//go:embed presets.yaml
var presetsYAML []byte

var table = mustLoad(presetsYAML)

func mustLoad(data []byte) *presetTable {
	t, err := load(data)
	if err != nil {
		panic(fmt.Sprintf("preset: invalid preset table: %v", err))
	}
	return t
}
