package render

import "github.com/Gxrco/planetarium/pkg/math3d"

// Fragment is a shaded sample produced by rasterizing a triangle.
// Fields are interpolated between the triangle's vertices with
// barycentric weights.
type Fragment struct {
	Position math3d.Vec2 // Screen position (pixel center)
	Depth    float64     // NDC depth for the Z-buffer test
	Normal   math3d.Vec3 // Interpolated world-space normal
	World    math3d.Vec3 // Interpolated world-space position
	UV       math3d.Vec2
	Color    Color

	// Intensity is the raw diffuse term toward the scene origin,
	// kept for shaders that skip the full lighting model.
	Intensity float64
}
