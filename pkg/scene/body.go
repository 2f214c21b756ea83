// Package scene holds the solar system: the celestial bodies, their
// orbits and trails, the starfield backdrop, and the player ship.
package scene

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/models"
	"github.com/Gxrco/planetarium/pkg/render"
	"github.com/Gxrco/planetarium/pkg/shade"
)

const (
	// maxTrailPoints bounds each body's orbital trail.
	maxTrailPoints = 50

	// trailInterval is how many ticks pass between trail samples.
	trailInterval = 2
)

// TrailPoint is one sampled position along a body's orbit.
type TrailPoint struct {
	Position math3d.Vec3
}

// Ring is an optional flat ring around a body, rendered with the
// body's own shader. Scale is relative to the body's scale.
type Ring struct {
	Mesh     *models.Mesh
	Scale    float64
	Rotation math3d.Vec3
}

// CelestialBody is one object in the system: the sun, a planet, or a
// moon. Orbital motion is parametric in the frame counter, so bodies
// never drift from their tracks.
type CelestialBody struct {
	Name     string
	Position math3d.Vec3
	Scale    float64
	Rotation math3d.Vec3
	Material shade.Material
	Visible  bool

	OrbitalSpeed  float64 // radians per tick around the sun
	AxialSpeed    float64 // radians per tick around own axis
	OrbitalRadius float64
	OrbitalOffset float64 // initial angle along the orbit

	Ring  *Ring
	Trail []TrailPoint
}

// Advance moves the body along its orbit for the given tick, spins it
// on its axis, and samples the trail every trailInterval ticks.
func (b *CelestialBody) Advance(tick int) {
	angle := float64(tick)*b.OrbitalSpeed + b.OrbitalOffset
	b.Position.X = b.OrbitalRadius * math.Cos(angle)
	b.Position.Z = b.OrbitalRadius * math.Sin(angle)
	b.Rotation.Y += b.AxialSpeed

	if tick%trailInterval == 0 {
		b.pushTrail()
	}
}

func (b *CelestialBody) pushTrail() {
	b.Trail = append(b.Trail, TrailPoint{Position: b.Position})
	if len(b.Trail) > maxTrailPoints {
		b.Trail = b.Trail[len(b.Trail)-maxTrailPoints:]
	}
}

// Obstacle returns the body as a camera collision sphere. Hidden
// bodies still block the camera.
func (b *CelestialBody) Obstacle() render.Obstacle {
	return render.Obstacle{Position: b.Position, Scale: b.Scale}
}

// BoundingRadius is the world-space radius used for frustum culling.
// A ringed body sweeps out its ring's outer edge.
func (b *CelestialBody) BoundingRadius() float64 {
	r := b.Scale
	if b.Ring != nil {
		r = b.Scale * b.Ring.Scale * b.Ring.Mesh.BoundingRadius()
	}
	return r
}

// TrailColor returns the color used to draw the body's orbit trail.
func (b *CelestialBody) TrailColor() render.Color {
	switch b.Material {
	case shade.Mercury:
		return render.RGB(0x66, 0x66, 0x66)
	case shade.Venus:
		return render.RGB(0xFF, 0xBB, 0x22)
	case shade.Earth:
		return render.RGB(0x22, 0x66, 0xFF)
	case shade.Mars:
		return render.RGB(0xFF, 0x66, 0x22)
	case shade.Jupiter:
		return render.RGB(0xFF, 0xBB, 0x66)
	case shade.Saturn:
		return render.RGB(0xFF, 0xDD, 0x66)
	default:
		return render.RGB(0x55, 0x55, 0x55)
	}
}
