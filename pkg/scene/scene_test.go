package scene

import (
	"math"
	"testing"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/noise"
	"github.com/Gxrco/planetarium/pkg/render"
	"github.com/Gxrco/planetarium/pkg/shade"
)

const epsilon = 0.001

func TestSolarSystemRoster(t *testing.T) {
	s := NewSolarSystem()

	if len(s.Bodies) != bodyCount {
		t.Fatalf("body count = %d, want %d", len(s.Bodies), bodyCount)
	}

	checks := []struct {
		index    int
		name     string
		scale    float64
		radius   float64
		material shade.Material
	}{
		{BodySun, "Sun", 2.0, 0, shade.Star},
		{BodyMercury, "Mercury", 0.5, 5, shade.Mercury},
		{BodyVenus, "Venus", 0.6, 9, shade.Venus},
		{BodyEarth, "Earth", 0.6, 13, shade.Earth},
		{BodyMars, "Mars", 0.5, 17, shade.Mars},
		{BodyJupiter, "Jupiter", 1.5, 22, shade.Jupiter},
		{BodySaturn, "Saturn", 2.0, 28, shade.Saturn},
		{BodyMoon, "Moon", 0.16, 0, shade.Moon},
	}
	for _, c := range checks {
		b := s.Bodies[c.index]
		if b.Name != c.name || b.Scale != c.scale || b.OrbitalRadius != c.radius || b.Material != c.material {
			t.Errorf("body %d = {%s %v r=%v m=%v}, want {%s %v r=%v m=%v}",
				c.index, b.Name, b.Scale, b.OrbitalRadius, b.Material,
				c.name, c.scale, c.radius, c.material)
		}
		if !b.Visible {
			t.Errorf("%s starts hidden", c.name)
		}
	}

	if s.Bodies[BodySaturn].Ring == nil {
		t.Error("Saturn has no ring")
	}
	if s.Bodies[BodySaturn].Rotation.X != 0.4 {
		t.Errorf("Saturn tilt = %v, want 0.4", s.Bodies[BodySaturn].Rotation.X)
	}
}

func TestAdvanceKeepsOrbitRadius(t *testing.T) {
	s := NewSolarSystem()

	for tick := 1; tick <= 300; tick++ {
		s.Advance(tick)
	}

	for _, i := range []int{BodyMercury, BodyVenus, BodyEarth, BodyMars, BodyJupiter, BodySaturn} {
		b := s.Bodies[i]
		r := math.Hypot(b.Position.X, b.Position.Z)
		if math.Abs(r-b.OrbitalRadius) > epsilon {
			t.Errorf("%s drifted off its orbit: r=%v want %v", b.Name, r, b.OrbitalRadius)
		}
	}
}

func TestAdvanceSpinsBodies(t *testing.T) {
	s := NewSolarSystem()
	before := s.Bodies[BodyEarth].Rotation.Y

	s.Advance(1)

	got := s.Bodies[BodyEarth].Rotation.Y - before
	if math.Abs(got-0.003) > 1e-9 {
		t.Errorf("Earth axial step = %v, want 0.003", got)
	}
}

func TestMoonOrbitsEarth(t *testing.T) {
	s := NewSolarSystem()

	for tick := 1; tick <= 500; tick++ {
		s.Advance(tick)

		earth := s.Bodies[BodyEarth].Position
		moon := s.Bodies[BodyMoon].Position
		horizontal := math.Hypot(moon.X-earth.X, moon.Z-earth.Z)
		if math.Abs(horizontal-moonOrbitRadius) > epsilon {
			t.Fatalf("tick %d: moon horizontal distance %v, want %v", tick, horizontal, moonOrbitRadius)
		}
		if math.Abs(moon.Y-earth.Y) > moonBobHeight+epsilon {
			t.Fatalf("tick %d: moon bob %v exceeds %v", tick, moon.Y-earth.Y, moonBobHeight)
		}
	}
}

func TestTrailSampledEveryOtherTick(t *testing.T) {
	b := &CelestialBody{Name: "probe", OrbitalRadius: 10, OrbitalSpeed: 0.1}

	for tick := 1; tick <= 20; tick++ {
		b.Advance(tick)
	}

	// Ticks 2, 4, ..., 20
	if len(b.Trail) != 10 {
		t.Errorf("trail length = %d, want 10", len(b.Trail))
	}
}

func TestTrailCapped(t *testing.T) {
	b := &CelestialBody{Name: "probe", OrbitalRadius: 10, OrbitalSpeed: 0.1}

	for tick := 1; tick <= 400; tick++ {
		b.Advance(tick)
	}

	if len(b.Trail) != maxTrailPoints {
		t.Fatalf("trail length = %d, want cap %d", len(b.Trail), maxTrailPoints)
	}

	// Oldest points are dropped: the last trail entry is the newest
	last := b.Trail[len(b.Trail)-1].Position
	if !posNear(last, b.Position) {
		t.Errorf("newest trail point %v != current position %v", last, b.Position)
	}
}

func posNear(a, b math3d.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func TestTrailColors(t *testing.T) {
	s := NewSolarSystem()

	if c := s.Bodies[BodyEarth].TrailColor(); c != render.RGB(0x22, 0x66, 0xFF) {
		t.Errorf("Earth trail = %v", c)
	}
	if c := s.Bodies[BodySun].TrailColor(); c != render.RGB(0x55, 0x55, 0x55) {
		t.Errorf("Sun trail = %v, want the default gray", c)
	}
}

func TestObstaclesCoverAllBodies(t *testing.T) {
	s := NewSolarSystem()
	s.Bodies[BodyVenus].Visible = false

	obs := s.Obstacles()
	if len(obs) != len(s.Bodies) {
		t.Fatalf("obstacle count = %d, want %d", len(obs), len(s.Bodies))
	}

	// Hidden bodies still block the camera
	if obs[BodyVenus].Scale != s.Bodies[BodyVenus].Scale {
		t.Error("hidden body missing from obstacles")
	}
}

func TestRenderDrawsBodies(t *testing.T) {
	s := NewSolarSystem()
	s.Advance(1)

	fb := render.NewFramebuffer(160, 100)
	fb.SetBackground(render.ColorSpace)
	fb.Clear()

	cam := render.NewCamera(math3d.V3(0, 25, 40), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	cam.SetAspectRatio(160.0 / 100.0)

	u := &render.Uniforms{
		Model:      math3d.Identity(),
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
		Viewport:   math3d.Viewport(160, 100),
		Time:       1,
		Noise:      noise.New(1337, 0.05),
	}

	s.Render(fb, u, cam.Frustum())

	painted := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) != render.ColorSpace {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("render painted nothing")
	}
}

func TestRenderSkipsHiddenBodies(t *testing.T) {
	s := NewSolarSystem()
	for _, b := range s.Bodies {
		b.Visible = false
	}
	s.Advance(1)

	fb := render.NewFramebuffer(160, 100)
	fb.SetBackground(render.ColorSpace)
	fb.Clear()

	cam := render.NewCamera(math3d.V3(0, 25, 40), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	cam.SetAspectRatio(160.0 / 100.0)

	u := &render.Uniforms{
		Model:      math3d.Identity(),
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
		Viewport:   math3d.Viewport(160, 100),
		Time:       1,
		Noise:      noise.New(1337, 0.05),
	}

	s.Render(fb, u, cam.Frustum())

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) != render.ColorSpace {
				t.Fatalf("hidden scene painted pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestSkyboxFillsFrame(t *testing.T) {
	sky, err := NewSkybox("")
	if err != nil {
		t.Fatalf("NewSkybox: %v", err)
	}

	fb := render.NewFramebuffer(64, 48)
	fb.SetBackground(render.ColorBlack)
	fb.Clear()

	sky.Render(fb)

	// Every pixel gets backdrop color, and at far depth
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) == render.ColorBlack {
				t.Fatalf("pixel (%d, %d) not covered by skybox", x, y)
			}
			if fb.DepthAt(x, y) != skyboxDepth {
				t.Fatalf("pixel (%d, %d) depth %v, want %v", x, y, fb.DepthAt(x, y), skyboxDepth)
			}
		}
	}
}

func TestShipFollowsCamera(t *testing.T) {
	ship := &Ship{Rotation: math3d.V3(0, math.Pi, 0), Scale: 0.1}
	cam := render.NewCamera(math3d.V3(0, 0, 40), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))

	ship.Follow(cam)

	// Four units ahead along -Z, 0.8 below
	want := math3d.V3(0, -0.8, 36)
	if !posNear(ship.Position, want) {
		t.Errorf("ship position = %v, want %v", ship.Position, want)
	}

	// Facing away from the viewer: yaw = atan2 of the eye-center delta
	if math.Abs(ship.Rotation.Y-0) > epsilon {
		t.Errorf("ship yaw = %v, want 0", ship.Rotation.Y)
	}
}
