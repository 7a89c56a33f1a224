// Package lighting provides the room's light sources in GPU-ready form.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/portfolio-room/pkg/math"
)

// Direction converts azimuth/elevation angles in degrees to a normalized
// vector pointing towards the light. Azimuth rotates around Y starting at +Z,
// elevation is measured up from the horizon.
func Direction(azimuth, elevation float32) math.Vec3 {
	az := float64(azimuth) * gomath.Pi / 180
	el := float64(elevation) * gomath.Pi / 180

	return math.V3(
		float32(gomath.Cos(el)*gomath.Sin(az)),
		float32(gomath.Sin(el)),
		float32(gomath.Cos(el)*gomath.Cos(az)),
	)
}
