package render

import (
	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/noise"
)

// Vertex is a mesh vertex in model space.
type Vertex struct {
	Position math3d.Vec3 // Model-space position
	Normal   math3d.Vec3 // Normal vector (for lighting)
	UV       math3d.Vec2 // Texture coordinates
}

// TransformedVertex is a vertex after the vertex stage: screen-space
// position plus the world-space attributes the fragment shaders need.
type TransformedVertex struct {
	Screen math3d.Vec3 // Screen position (x, y in pixels, z is NDC depth)
	World  math3d.Vec3 // World-space position (for point lighting)
	Normal math3d.Vec3 // World-space normal
	UV     math3d.Vec2
}

// Uniforms carries the per-draw state shared by every vertex and
// fragment of a mesh.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	// Time is the frame counter driving animated shaders.
	Time int

	// Noise drives the procedural surface shaders.
	Noise *noise.Generator
}

// NormalMatrix returns the inverse-transpose of the model matrix's
// upper-left 3x3, used to transform normals. Falls back to identity
// for singular models.
func (u *Uniforms) NormalMatrix() math3d.Mat3 {
	return math3d.Mat3FromMat4(u.Model).Inverse().Transpose()
}

// TransformVertex runs the vertex stage: model, view, projection,
// perspective divide, then viewport. Normals go through the inverse
// transpose of the model matrix.
func TransformVertex(v Vertex, u *Uniforms, normalMat math3d.Mat3) TransformedVertex {
	world := u.Model.MulVec4(math3d.V4FromV3(v.Position, 1))
	clip := u.Projection.MulVec4(u.View.MulVec4(world))

	ndc := clip.PerspectiveDivide()
	screen := u.Viewport.MulVec4(math3d.V4FromV3(ndc, 1))

	return TransformedVertex{
		Screen: screen.Vec3(),
		World:  world.Vec3(),
		Normal: normalMat.MulVec3(v.Normal).Normalize(),
		UV:     v.UV,
	}
}
