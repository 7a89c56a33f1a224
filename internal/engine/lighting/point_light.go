package lighting

import "github.com/Faultbox/portfolio-room/pkg/math"

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight is a point light source.
type PointLight struct {
	Position  math.Vec3
	Color     [3]float32 // RGB color (0-1 range)
	Range     float32    // Light radius/falloff distance
	Intensity float32
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// SetLights replaces all lights in the buffer, truncating to MaxPointLights.
// Colors are clamped to 0-1 and non-positive ranges get a default.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Lights = b.Lights[:0]
	for _, l := range lights {
		if len(b.Lights) == MaxPointLights {
			break
		}
		for i := range l.Color {
			l.Color[i] = math.Clamp(l.Color[i], 0, 1)
		}
		if l.Range <= 0 {
			l.Range = 3
		}
		b.Lights = append(b.Lights, l)
	}
}

// Positions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *PointLightBuffer) Positions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position.X
		result[i*3+1] = light.Position.Y
		result[i*3+2] = light.Position.Z
	}
	return result
}

// Colors returns colors premultiplied by intensity, flattened for GPU upload.
func (b *PointLightBuffer) Colors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color[0] * light.Intensity
		result[i*3+1] = light.Color[1] * light.Intensity
		result[i*3+2] = light.Color[2] * light.Intensity
	}
	return result
}

// Ranges returns ranges as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) Ranges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}
