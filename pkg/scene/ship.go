package scene

import (
	"fmt"
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/models"
	"github.com/Gxrco/planetarium/pkg/render"
	"github.com/Gxrco/planetarium/pkg/shade"
)

// Ship hover placement relative to the camera.
const (
	shipDistance = 4.0  // in front of the eye, along the view direction
	shipDrop     = -0.8 // below eye level
	shipScale    = 0.1
)

// Ship is the player's vessel, pinned in front of the camera in ship
// mode so it reads as a cockpit view.
type Ship struct {
	Position math3d.Vec3
	Rotation math3d.Vec3
	Scale    float64

	verts []render.Vertex
}

// LoadShip reads the ship model from a glTF binary. The mesh is shaded
// procedurally, so materials in the file are ignored.
func LoadShip(path string) (*Ship, error) {
	mesh, err := models.LoadGLB(path)
	if err != nil {
		return nil, fmt.Errorf("loading ship model: %w", err)
	}
	return &Ship{
		Rotation: math3d.V3(0, math.Pi, 0),
		Scale:    shipScale,
		verts:    mesh.VertexArray(),
	}, nil
}

// Follow repositions the ship just ahead of and below the camera eye,
// turned to face away from the viewer.
func (s *Ship) Follow(cam *render.Camera) {
	forward := cam.Center.Sub(cam.Eye).Normalize()
	s.Position = cam.Eye.
		Add(forward.Scale(shipDistance)).
		Add(cam.Up.Scale(shipDrop))

	delta := cam.Eye.Sub(cam.Center)
	s.Rotation = math3d.V3(0, math.Atan2(delta.X, delta.Z), 0)
}

// Render draws the ship with the rocky shader.
func (s *Ship) Render(fb *render.Framebuffer, u *render.Uniforms, sun math3d.Vec3) {
	u.Model = modelMatrix(s.Position, s.Scale, s.Rotation)
	drawMesh(fb, s.verts, u, shade.Shader(shade.RockyPlanet), sun)
}
