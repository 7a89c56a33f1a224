// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/portfolio-room/internal/engine/picking"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding pushes outlines just off the surfaces they frame.
const DefaultBBoxPadding = 0.01

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// AABBWireframe creates wireframe vertices for b grown by padding on every side.
func AABBWireframe(b picking.AABB, padding float32) []float32 {
	return GenerateBBoxWireframeVertices(
		b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding,
		b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding,
	)
}

// BoundsWireframe appends the outlines of every box into one line list.
func BoundsWireframe(boxes []picking.AABB, padding float32) []float32 {
	out := make([]float32, 0, len(boxes)*BBoxWireframeVertexCount*3)
	for _, b := range boxes {
		out = append(out, AABBWireframe(b, padding)...)
	}
	return out
}
