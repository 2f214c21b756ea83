package scene

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/models"
	"github.com/Gxrco/planetarium/pkg/render"
	"github.com/Gxrco/planetarium/pkg/shade"
)

// Moon orbit around Earth. The moon is driven off Earth's position
// each tick rather than tracking the sun directly.
const (
	moonOrbitRadius = 0.8
	moonOrbitSpeed  = 0.02
	moonBobHeight   = 0.2
)

// Body indices into System.Bodies, stable across the roster. Warp and
// visibility keys map onto these.
const (
	BodySun = iota
	BodyMercury
	BodyVenus
	BodyEarth
	BodyMars
	BodyJupiter
	BodySaturn
	BodyMoon
	bodyCount
)

// System is the whole solar system plus the shared geometry it is
// rendered with.
type System struct {
	Bodies []*CelestialBody

	sphere []render.Vertex
}

// NewSolarSystem builds the eight-body roster: the sun, six planets,
// and Earth's moon. Saturn carries a tilted ring.
func NewSolarSystem() *System {
	sphere := models.NewUVSphere(24, 48)

	ring := &Ring{
		Mesh:     models.NewRing(1.2, 2.5, 64),
		Scale:    1.0,
		Rotation: math3d.V3(0.4, 0, 0),
	}

	bodies := []*CelestialBody{
		{
			Name:       "Sun",
			Scale:      2.0,
			Material:   shade.Star,
			Visible:    true,
			AxialSpeed: 0.001,
		},
		{
			Name:          "Mercury",
			Position:      math3d.V3(5, 0, 0),
			Scale:         0.5,
			Material:      shade.Mercury,
			Visible:       true,
			OrbitalSpeed:  0.02,
			AxialSpeed:    0.004,
			OrbitalRadius: 5,
		},
		{
			Name:          "Venus",
			Position:      math3d.V3(-9, 0, 0),
			Scale:         0.6,
			Material:      shade.Venus,
			Visible:       true,
			OrbitalSpeed:  0.015,
			AxialSpeed:    0.002,
			OrbitalRadius: 9,
		},
		{
			Name:          "Earth",
			Position:      math3d.V3(13, 0, 0),
			Scale:         0.6,
			Material:      shade.Earth,
			Visible:       true,
			OrbitalSpeed:  0.01,
			AxialSpeed:    0.003,
			OrbitalRadius: 13,
		},
		{
			Name:          "Mars",
			Position:      math3d.V3(-17, 0, 0),
			Scale:         0.5,
			Material:      shade.Mars,
			Visible:       true,
			OrbitalSpeed:  0.008,
			AxialSpeed:    0.003,
			OrbitalRadius: 17,
		},
		{
			Name:          "Jupiter",
			Position:      math3d.V3(22, 0, 0),
			Scale:         1.5,
			Material:      shade.Jupiter,
			Visible:       true,
			OrbitalSpeed:  0.004,
			AxialSpeed:    0.004,
			OrbitalRadius: 22,
		},
		{
			Name:          "Saturn",
			Position:      math3d.V3(-28, 0, 0),
			Scale:         2.0,
			Rotation:      math3d.V3(0.4, 0, 0),
			Material:      shade.Saturn,
			Visible:       true,
			OrbitalSpeed:  0.003,
			AxialSpeed:    0.003,
			OrbitalRadius: 28,
			Ring:          ring,
		},
		{
			Name:     "Moon",
			Position: math3d.V3(13.8, 0, 0),
			Scale:    0.16,
			Material: shade.Moon,
			Visible:  true,
		},
	}

	return &System{
		Bodies: bodies,
		sphere: sphere.VertexArray(),
	}
}

// Advance moves every body to its position for the given tick. The
// moon follows Earth with a slight vertical bob.
func (s *System) Advance(tick int) {
	for i, b := range s.Bodies {
		if i == BodyMoon {
			continue
		}
		b.Advance(tick)
	}

	earth := s.Bodies[BodyEarth].Position
	t := float64(tick)
	moon := s.Bodies[BodyMoon]
	moon.Position = math3d.V3(
		earth.X+moonOrbitRadius*math.Cos(t*moonOrbitSpeed),
		earth.Y+moonBobHeight*math.Sin(t*moonOrbitSpeed*0.5),
		earth.Z+moonOrbitRadius*math.Sin(t*moonOrbitSpeed),
	)
}

// Obstacles returns every body as a camera collision sphere.
func (s *System) Obstacles() []render.Obstacle {
	obs := make([]render.Obstacle, len(s.Bodies))
	for i, b := range s.Bodies {
		obs[i] = b.Obstacle()
	}
	return obs
}

// SunPosition is the world-space light source for every shader.
func (s *System) SunPosition() math3d.Vec3 {
	return s.Bodies[BodySun].Position
}

// Render draws every visible body into fb: orbit trails first, then
// the body itself, then its ring if it has one. Bodies fully outside
// the view frustum are skipped.
func (s *System) Render(fb *render.Framebuffer, u *render.Uniforms, frustum render.Frustum) {
	sun := s.SunPosition()

	for _, b := range s.Bodies {
		if !b.Visible {
			continue
		}

		s.drawTrail(fb, u, b)

		if !frustum.IntersectsSphere(b.Position, b.BoundingRadius()) {
			continue
		}

		fn := shade.Shader(b.Material)

		u.Model = modelMatrix(b.Position, b.Scale, b.Rotation)
		drawMesh(fb, s.sphere, u, fn, sun)

		if b.Ring != nil {
			u.Model = modelMatrix(b.Position, b.Scale*b.Ring.Scale, b.Ring.Rotation)
			drawMesh(fb, b.Ring.Mesh.VertexArray(), u, fn, sun)
		}
	}
}

// drawTrail projects each sampled orbit point straight through
// view and projection and plots it as a depth-tested pixel.
func (s *System) drawTrail(fb *render.Framebuffer, u *render.Uniforms, b *CelestialBody) {
	if len(b.Trail) == 0 {
		return
	}
	fb.SetCurrentColor(b.TrailColor())

	for _, tp := range b.Trail {
		clip := u.Projection.MulVec4(u.View.MulVec4(math3d.V4FromV3(tp.Position, 1)))
		if clip.W == 0 {
			continue
		}
		ndcX := clip.X / clip.W
		ndcY := clip.Y / clip.W

		x := int((ndcX + 1) * float64(fb.Width) / 2)
		y := int((-ndcY + 1) * float64(fb.Height) / 2)
		fb.Point(x, y, clip.Z/clip.W)
	}
}

// drawMesh runs the full pipeline over a triangle list: vertex stage,
// rasterize, shade, depth-tested write.
func drawMesh(fb *render.Framebuffer, verts []render.Vertex, u *render.Uniforms, fn shade.Func, sun math3d.Vec3) {
	normalMat := u.NormalMatrix()

	for i := 0; i+2 < len(verts); i += 3 {
		v0 := render.TransformVertex(verts[i], u, normalMat)
		v1 := render.TransformVertex(verts[i+1], u, normalMat)
		v2 := render.TransformVertex(verts[i+2], u, normalMat)

		for frag := range render.Fragments(v0, v1, v2) {
			fb.SetCurrentColor(fn(frag, u, sun))
			fb.Point(int(frag.Position.X), int(frag.Position.Y), frag.Depth)
		}
	}
}

// modelMatrix composes translation, Z-Y-X rotation, and uniform scale.
func modelMatrix(position math3d.Vec3, scale float64, rotation math3d.Vec3) math3d.Mat4 {
	return math3d.Translate(position).
		Mul(math3d.RotateZ(rotation.Z)).
		Mul(math3d.RotateY(rotation.Y)).
		Mul(math3d.RotateX(rotation.X)).
		Mul(math3d.ScaleUniform(scale))
}
