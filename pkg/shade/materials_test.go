package shade

import (
	"testing"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/noise"
	"github.com/Gxrco/planetarium/pkg/render"
)

func shaderUniforms() *render.Uniforms {
	return &render.Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Identity(),
		Time:       100,
		Noise:      noise.New(1337, 0.05),
	}
}

func surfaceFragment(world math3d.Vec3, u, v float64) render.Fragment {
	return render.Fragment{
		World:  world,
		Normal: world.Normalize(),
		UV:     math3d.V2(u, v),
	}
}

func TestEveryMaterialShades(t *testing.T) {
	u := shaderUniforms()
	sun := math3d.V3(0, 0, 0)
	frag := surfaceFragment(math3d.V3(13, 0, 0), 0.3, 0.6)

	materials := []Material{
		Default, Star, Mercury, Venus, Earth, Mars,
		Jupiter, Saturn, Moon, RockyPlanet, GasGiant,
	}
	for _, m := range materials {
		c := Shader(m)(frag, u, sun)
		if c.A != 255 {
			t.Errorf("material %d produced alpha %d, want 255", m, c.A)
		}
	}
}

func TestShaderUnknownFallsBack(t *testing.T) {
	u := shaderUniforms()
	sun := math3d.V3(0, 0, 0)
	frag := surfaceFragment(math3d.V3(13, 0, 0), 0.3, 0.6)

	unknown := Shader(Material(99))(frag, u, sun)
	def := Shader(Default)(frag, u, sun)
	if unknown != def {
		t.Errorf("unknown material = %v, default = %v", unknown, def)
	}
}

func TestRegisterOverridesShader(t *testing.T) {
	sentinel := render.RGB(1, 2, 3)
	custom := Material(200)
	Register(custom, func(render.Fragment, *render.Uniforms, math3d.Vec3) render.Color {
		return sentinel
	})

	u := shaderUniforms()
	got := Shader(custom)(surfaceFragment(math3d.V3(1, 0, 0), 0, 0), u, math3d.Zero3())
	if got != sentinel {
		t.Errorf("got %v, want sentinel %v", got, sentinel)
	}
}

func TestStarShaderEmissive(t *testing.T) {
	u := shaderUniforms()

	// The sun surface near the core should glow regardless of lighting
	frag := surfaceFragment(math3d.V3(2, 0, 0), 0.5, 0.5)
	c := starShader(frag, u, math3d.Zero3())
	if c.R < 100 {
		t.Errorf("star core R = %d, want bright", c.R)
	}

	// Brightness fades with distance from the core
	rim := surfaceFragment(math3d.V3(24, 0, 0), 0.5, 0.5)
	dim := starShader(rim, u, math3d.Zero3())
	if dim.R >= c.R {
		t.Errorf("rim %d not dimmer than core %d", dim.R, c.R)
	}
}

func TestStarShaderPulses(t *testing.T) {
	u1 := shaderUniforms()
	u2 := shaderUniforms()
	u2.Time = u1.Time + 80 // near the opposite phase of the pulse

	frag := surfaceFragment(math3d.V3(2, 0, 0), 0.5, 0.5)
	c1 := starShader(frag, u1, math3d.Zero3())
	c2 := starShader(frag, u2, math3d.Zero3())
	if c1 == c2 {
		t.Error("star brightness did not change over time")
	}
}

func TestEarthShaderDayNight(t *testing.T) {
	u := shaderUniforms()
	sun := math3d.V3(0, 0, 0)

	day := surfaceFragment(math3d.V3(12.4, 0, 0), 0.3, 0.5)
	day.Normal = math3d.V3(-1, 0, 0)
	night := surfaceFragment(math3d.V3(13.6, 0, 0), 0.3, 0.5)
	night.Normal = math3d.V3(0.707, 0.707, 0)

	dc := earthShader(day, u, sun)
	nc := earthShader(night, u, sun)

	dayLum := int(dc.R) + int(dc.G) + int(dc.B)
	nightLum := int(nc.R) + int(nc.G) + int(nc.B)
	if dayLum <= nightLum {
		t.Errorf("day luminance %d not above night %d", dayLum, nightLum)
	}
}

func TestSaturnShaderRingAnnulus(t *testing.T) {
	u := shaderUniforms()
	sun := math3d.V3(0, 0, 0)

	// The annulus test runs in world coordinates, so only fragments
	// near the origin within [1.2, 2.5] and close to the ring plane
	// pick up the band tint
	onRing := render.Fragment{
		World:  math3d.V3(1.8, 0.05, 0),
		Normal: math3d.V3(0, 1, 0),
		UV:     math3d.V2(0.5, 0.5),
	}
	offRing := render.Fragment{
		World:  math3d.V3(1.8, 0.5, 0),
		Normal: math3d.V3(0, 1, 0),
		UV:     math3d.V2(0.5, 0.5),
	}
	c := saturnShader(onRing, u, sun)
	c2 := saturnShader(offRing, u, sun)
	if c == c2 {
		t.Error("ring fragment shaded identically to off-ring fragment")
	}
}

func TestDefaultShaderGray(t *testing.T) {
	u := shaderUniforms()
	frag := surfaceFragment(math3d.V3(5, 0, 0), 0, 0)
	frag.Normal = math3d.V3(0, 1, 0)

	// Terminator fragment under the basic model: no ambient, so black
	c := defaultShader(frag, u, math3d.Zero3())
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("got %v, want black at the terminator", c)
	}
}
