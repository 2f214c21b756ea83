// Package shade implements the fragment shaders for the celestial
// bodies: a point-light Phong model plus procedural surface materials.
package shade

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/render"
)

// Params tunes the point-light model applied to planet surfaces.
type Params struct {
	Ambient     float64 // Constant floor so the night side stays visible
	Diffuse     float64 // Diffuse gain
	Specular    float64 // Specular gain
	Shininess   float64 // Specular exponent
	Attenuation float64 // Quadratic distance falloff coefficient
}

// Enhanced is the model most planet shaders use: an ambient floor,
// strong diffuse and a broad specular highlight.
func Enhanced() Params {
	return Params{
		Ambient:     0.2,
		Diffuse:     2.0,
		Specular:    0.5,
		Shininess:   8,
		Attenuation: 0.003,
	}
}

// Basic is the harsher model of the fallback shader: no ambient term,
// tighter highlights, faster falloff.
func Basic() Params {
	return Params{
		Ambient:     0,
		Diffuse:     1.5,
		Specular:    0.3,
		Shininess:   16,
		Attenuation: 0.005,
	}
}

// Apply lights base with a point light at lightPos. The viewer is
// assumed at the world origin side of the fragment, matching a scene
// whose camera orbits the origin. multiplier scales both diffuse and
// specular, letting materials brighten without changing the model.
func Apply(frag render.Fragment, lightPos math3d.Vec3, base render.Color, p Params, multiplier float64) render.Color {
	toLight := lightPos.Sub(frag.World)
	lightDir := toLight.Normalize()

	diffuse := math.Max(0, frag.Normal.Dot(lightDir)) * p.Diffuse * multiplier

	viewDir := frag.World.Negate().Normalize()
	reflectDir := frag.Normal.Scale(2 * frag.Normal.Dot(lightDir)).Sub(lightDir).Normalize()
	specular := math.Pow(math.Max(0, reflectDir.Dot(viewDir)), p.Shininess) * p.Specular * multiplier

	dist := toLight.Len()
	attenuation := 1.0 / (1.0 + p.Attenuation*dist*dist)

	k := p.Ambient + diffuse*attenuation + specular
	return render.Color{
		R: clamp255(float64(base.R) * k),
		G: clamp255(float64(base.G) * k),
		B: clamp255(float64(base.B) * k),
		A: 255,
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
