package shade

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/render"
)

// Material tags a celestial body with the surface shader to use.
type Material int

const (
	Default Material = iota
	Star
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Moon
	RockyPlanet
	GasGiant
)

// Func shades one fragment. sun is the world-space light position.
type Func func(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color

var registry = map[Material]Func{
	Star:        starShader,
	Mercury:     mercuryShader,
	Venus:       venusShader,
	Earth:       earthShader,
	Mars:        marsShader,
	Jupiter:     jupiterShader,
	Saturn:      saturnShader,
	Moon:        moonShader,
	RockyPlanet: rockyPlanetShader,
	GasGiant:    gasGiantShader,
}

// Shader returns the shading function for m. Unknown materials fall
// back to the flat gray default.
func Shader(m Material) Func {
	if fn, ok := registry[m]; ok {
		return fn
	}
	return defaultShader
}

// Register installs a custom shading function for a material tag,
// replacing any existing one.
func Register(m Material, fn Func) {
	registry[m] = fn
}

// fromFloat builds a color from channel values in [0, 1], clamping.
func fromFloat(r, g, b float64) render.Color {
	return render.Color{
		R: clamp255(r * 255),
		G: clamp255(g * 255),
		B: clamp255(b * 255),
		A: 255,
	}
}

// scaleColor multiplies each channel by k, clamping.
func scaleColor(c render.Color, k float64) render.Color {
	return render.Color{
		R: clamp255(float64(c.R) * k),
		G: clamp255(float64(c.G) * k),
		B: clamp255(float64(c.B) * k),
		A: 255,
	}
}

// starShader is emissive: no lighting pass, just a pulsing plasma
// surface fading toward the rim.
func starShader(frag render.Fragment, u *render.Uniforms, _ math3d.Vec3) render.Color {
	timeFactor := 0.95 + 0.15*math.Sin(float64(u.Time)*0.02)

	const zoom = 30.0
	surface := u.Noise.Noise2D(
		frag.UV.X*zoom+float64(u.Time)*0.01,
		frag.UV.Y*zoom,
	)
	plasma := u.Noise.Noise2D(
		frag.UV.X*zoom*0.5-float64(u.Time)*0.015,
		frag.UV.Y*zoom*0.5+float64(u.Time)*0.015,
	)

	red := 1.2
	green := 0.9 + 0.2*surface
	blue := 0.3 + 0.15*plasma

	gradient := math.Max(0, 1.0-frag.World.Len()*0.04)
	noiseFactor := 0.9 + 0.2*(surface+plasma)

	return fromFloat(
		math.Min(1, red*gradient*timeFactor*noiseFactor),
		math.Min(1, green*gradient*timeFactor*noiseFactor),
		math.Min(1, blue*gradient*timeFactor*noiseFactor),
	)
}

// mercuryShader renders a deep purple crystalline surface.
func mercuryShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	const zoom = 60.0
	t := float64(u.Time) * 0.02

	surface := u.Noise.Noise2D(frag.UV.X*zoom+t, frag.UV.Y*zoom-t*0.5)
	crystal := u.Noise.Noise2D(frag.UV.X*zoom*2-t*0.8, frag.UV.Y*zoom*2+t*0.3)

	base := fromFloat(
		0.5+0.2*crystal,
		0.2+0.1*surface,
		0.8+0.2*crystal,
	)

	return Apply(frag, sun, base, Enhanced(), 1.4)
}

// venusShader renders dense golden sulfuric clouds.
func venusShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	const zoom = 70.0
	t := float64(u.Time) * 0.015

	clouds := u.Noise.Noise2D(frag.UV.X*zoom+t, frag.UV.Y*zoom-t*0.7)
	turbulence := u.Noise.Noise2D(frag.UV.X*zoom*1.5-t*0.5, frag.UV.Y*zoom*1.5+t*0.3)
	heat := u.Noise.Noise2D(frag.UV.X*zoom*2+t*0.2, frag.UV.Y*zoom*2-t*0.2)

	base := fromFloat(
		0.85+0.15*turbulence,
		0.65+0.15*clouds,
		0.2+0.1*heat,
	)

	return Apply(frag, sun, base, Enhanced(), 1.3)
}

// earthShader picks water, land or mountains by noise threshold, then
// layers drifting clouds and a blue atmosphere rim.
func earthShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	const zoom = 80.0
	terrain := u.Noise.Noise2D(frag.UV.X*zoom, frag.UV.Y*zoom)
	mountains := u.Noise.Noise2D(frag.UV.X*zoom*2, frag.UV.Y*zoom*2)

	var baseR, baseG, baseB float64
	switch {
	case terrain > 0.6:
		k := 1.0 + mountains*0.5
		baseR, baseG, baseB = 0.8*k, 0.6*k, 0.5*k
	case terrain > 0.2:
		baseR, baseG, baseB = 0.2, 0.9, 0.2
	default:
		baseR, baseG, baseB = 0.1, 0.5, 1.0
	}

	const cloudZoom = 30.0
	drift := float64(u.Time) * 0.01
	cloudNoise := u.Noise.Noise2D(frag.UV.X*cloudZoom+drift, frag.UV.Y*cloudZoom+drift)
	cloudAlpha := clampUnit(cloudNoise*0.5 + 0.5)

	atmosphere := math.Pow(1.0-frag.Normal.Dot(math3d.Up()), 2)
	r := baseR*(1-atmosphere) + 0.6*atmosphere*0.4
	g := baseG*(1-atmosphere) + 0.8*atmosphere*0.4
	b := baseB*(1-atmosphere) + 1.2*atmosphere*0.4

	r = r*(1-cloudAlpha) + 1.2*cloudAlpha
	g = g*(1-cloudAlpha) + 1.2*cloudAlpha
	b = b*(1-cloudAlpha) + 1.2*cloudAlpha

	return Apply(frag, sun, fromFloat(r, g, b), Enhanced(), 1.8)
}

// marsShader layers rocky terrain, canyons and drifting dust storms.
func marsShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	const zoom = 50.0
	t := float64(u.Time) * 0.02

	rocks := math.Abs(u.Noise.Noise2D(frag.UV.X*zoom*2, frag.UV.Y*zoom*2))
	largeRocks := math.Abs(u.Noise.Noise2D(frag.UV.X*zoom, frag.UV.Y*zoom))
	canyons := math.Abs(u.Noise.Noise2D(frag.UV.X*zoom*3, frag.UV.Y*zoom*3))
	dust := u.Noise.Noise2D(frag.UV.X*zoom+t, frag.UV.Y*zoom-t)

	terrain := clampUnit(rocks*0.4 + largeRocks*0.4 + canyons*0.2)

	base := fromFloat(
		0.8+0.2*terrain,
		0.3+0.2*largeRocks,
		0.1+0.1*dust,
	)

	return Apply(frag, sun, base, Enhanced(), 1.4)
}

// jupiterShader bands the surface by latitude with storm highlights.
func jupiterShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	t := float64(u.Time) * 0.02
	latitude := frag.UV.Y * math.Pi

	bands := math.Sin(latitude*12)*0.5 + 0.5
	secondary := math.Sin(latitude*20) * 0.3
	storm := u.Noise.Noise2D(frag.UV.X*30+t, frag.UV.Y*30)

	base := fromFloat(
		0.9+0.3*bands,
		0.7+0.2*bands+secondary,
		0.4+0.4*storm,
	)

	return Apply(frag, sun, base, Enhanced(), 1.7)
}

// saturnShader shades the golden surface, and when the fragment's
// world position falls in the flat annulus around the body it shades
// banded rings instead.
func saturnShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	t := float64(u.Time) * 0.01
	const zoom = 60.0

	ringY := math.Abs(frag.World.Y)
	ringDist := math.Sqrt(frag.World.X*frag.World.X + frag.World.Z*frag.World.Z)

	const (
		innerRadius   = 1.2
		outerRadius   = 2.5
		ringThickness = 0.15
	)

	ringWeight := 0.0
	if ringDist > innerRadius && ringDist < outerRadius && ringY < ringThickness {
		distFactor := 1.0 - (ringDist-innerRadius)/(outerRadius-innerRadius)
		heightFactor := 1.0 - ringY/ringThickness
		ringWeight = math.Max(0, distFactor*heightFactor)
	}

	var base render.Color
	if ringWeight > 0 {
		ringPattern := math.Sin(ringDist*8)*0.5 + 0.5
		ringNoise := u.Noise.Noise2D(frag.UV.X*120+t, frag.UV.Y*120) * 0.3

		ring := fromFloat(
			1.0*(0.8+0.2*ringPattern+ringNoise),
			0.95*(0.7+0.3*ringPattern+ringNoise),
			0.9*(0.6+0.4*ringPattern+ringNoise),
		)
		base = scaleColor(ring, ringWeight*(0.8+0.2*ringPattern))
	} else {
		surface := u.Noise.Noise2D(frag.UV.X*zoom, frag.UV.Y*zoom)
		base = fromFloat(
			0.9+0.1*surface,
			0.7+0.2*surface,
			0.5+0.1*surface,
		)
	}

	return Apply(frag, sun, base, Enhanced(), 2.0)
}

// moonShader combines crater depth with dark maria patches.
func moonShader(frag render.Fragment, u *render.Uniforms, sun math3d.Vec3) render.Color {
	const zoom = 40.0

	largeCraters := math.Abs(u.Noise.Noise2D(frag.UV.X*zoom, frag.UV.Y*zoom))
	smallCraters := math.Abs(u.Noise.Noise2D(frag.UV.X*zoom*4, frag.UV.Y*zoom*4))
	surface := u.Noise.Noise2D(frag.UV.X*zoom*2, frag.UV.Y*zoom*2)

	craterDepth := clampUnit(largeCraters*0.7 + smallCraters*0.3)
	mare := math.Abs(surface) * 0.3

	var base render.Color
	if mare > 0.2 {
		base = fromFloat(0.2, 0.2, 0.25)
	} else {
		k := 1.0 - craterDepth*0.5
		base = fromFloat(0.8*k, 0.8*k, 0.85*k)
	}

	return Apply(frag, sun, base, Enhanced(), 1.2)
}

// rockyPlanetShader is diffuse-only: bare rock with hard shadows.
func rockyPlanetShader(frag render.Fragment, _ *render.Uniforms, sun math3d.Vec3) render.Color {
	diffuse := math.Max(0, frag.Normal.Dot(sun.Sub(frag.World).Normalize()))
	return scaleColor(render.RGB(200, 100, 50), diffuse)
}

// gasGiantShader scrolls horizontal noise bands over a violet base.
func gasGiantShader(frag render.Fragment, u *render.Uniforms, _ math3d.Vec3) render.Color {
	band := u.Noise.Noise2D(frag.UV.X*5, float64(u.Time)*0.1)
	return scaleColor(fromFloat(0.8, 0.5, 1.0), 0.5+0.5*band)
}

func defaultShader(frag render.Fragment, _ *render.Uniforms, sun math3d.Vec3) render.Color {
	return Apply(frag, sun, render.RGB(100, 100, 100), Basic(), 1)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
