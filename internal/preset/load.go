package preset

import (
	"fmt"
	gomath "math"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/portfolio-room/internal/engine/camera"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

type presetTable struct {
	presets map[Name]Preset
	inverse map[Target]Name
}

// fileFormat mirrors presets.yaml.
type fileFormat struct {
	Presets map[string]presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Position    [3]float32        `yaml:"position"`
	LookAt      [3]float32        `yaml:"look_at"`
	FOV         float32           `yaml:"fov"`
	Target      string            `yaml:"target"`
	Constraints *constraintsEntry `yaml:"constraints"`
}

type constraintsEntry struct {
	MinDistance *float32 `yaml:"min_distance"`
	MaxDistance *float32 `yaml:"max_distance"`
	MinPolar    *float32 `yaml:"min_polar"`
	MaxPolar    *float32 `yaml:"max_polar"`
	MinAzimuth  *float32 `yaml:"min_azimuth"`
	MaxAzimuth  *float32 `yaml:"max_azimuth"`
}

func (e *constraintsEntry) resolve() Constraints {
	c := camera.Unlimited()
	if e.MinDistance != nil {
		c.MinDistance = *e.MinDistance
	}
	if e.MaxDistance != nil {
		c.MaxDistance = *e.MaxDistance
	}
	if e.MinPolar != nil {
		c.MinPolar = radians(*e.MinPolar)
	}
	if e.MaxPolar != nil {
		c.MaxPolar = radians(*e.MaxPolar)
	}
	if e.MinAzimuth != nil {
		c.MinAzimuth = radians(*e.MinAzimuth)
	}
	if e.MaxAzimuth != nil {
		c.MaxAzimuth = radians(*e.MaxAzimuth)
	}
	return c
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}

// load parses and validates a preset table document.
func load(data []byte) (*presetTable, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	t := &presetTable{
		presets: make(map[Name]Preset, len(f.Presets)),
		inverse: make(map[Target]Name, len(allTargets)),
	}

	var errs error
	for rawName, e := range f.Presets {
		name, err := Parse(rawName)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		target, err := ParseTarget(e.Target)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("preset %s: %w", name, err))
			continue
		}

		p := Preset{
			Name:     name,
			Position: math.V3(e.Position[0], e.Position[1], e.Position[2]),
			LookAt:   math.V3(e.LookAt[0], e.LookAt[1], e.LookAt[2]),
			FOV:      e.FOV,
			Target:   target,
		}
		if e.Constraints != nil {
			c := e.Constraints.resolve()
			p.Constraints = &c
		}
		t.presets[name] = p

		if target.IsContent() {
			if other, dup := t.inverse[target]; dup {
				errs = multierr.Append(errs, fmt.Errorf("target %s framed by both %s and %s", target, other, name))
				continue
			}
			t.inverse[target] = name
		}
	}

	return t, multierr.Append(errs, validate(t))
}

// validate checks totality of the table and the shape of each preset.
func validate(t *presetTable) error {
	var errs error
	for _, name := range allNames {
		p, ok := t.presets[name]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("preset %s missing", name))
			continue
		}
		if p.Position.ApproxEqual(p.LookAt, 1e-4) {
			errs = multierr.Append(errs, fmt.Errorf("preset %s: position equals look_at", name))
		}
		if p.FOV < 0 || p.FOV >= 180 {
			errs = multierr.Append(errs, fmt.Errorf("preset %s: fov %v out of range", name, p.FOV))
		}
		if c := p.Constraints; c != nil {
			if c.MinDistance > c.MaxDistance || c.MinPolar > c.MaxPolar || c.MinAzimuth > c.MaxAzimuth {
				errs = multierr.Append(errs, fmt.Errorf("preset %s: constraint min exceeds max", name))
			}
		}
	}
	if p, ok := t.presets[Overview]; ok && p.Target != None {
		errs = multierr.Append(errs, fmt.Errorf("overview must map to %s, got %s", None, p.Target))
	}
	for _, target := range allTargets {
		if _, ok := t.inverse[target]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("target %s has no preset", target))
		}
	}
	return errs
}

// Validate re-checks the loaded table. It never fails for a binary that
// started, since the table is validated when the package initializes.
func Validate() error {
	return validate(table)
}
