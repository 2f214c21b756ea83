// Package render provides the software rasterization pipeline for the
// planetarium: camera, vertex transform, triangle fill, framebuffer.
package render

import (
	"iter"
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
)

// Fragments rasterizes one screen-space triangle and yields a Fragment
// per covered pixel. Depth, world position, normal and UV are
// barycentrically interpolated. Degenerate triangles yield nothing.
// Both windings are filled; callers cull at the mesh level instead.
func Fragments(v0, v1, v2 TransformedVertex) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		a, b, c := v0.Screen, v1.Screen, v2.Screen

		// Signed doubled area; zero means the triangle collapsed.
		area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
		if area == 0 {
			return
		}

		minX := int(math.Floor(min3(a.X, b.X, c.X)))
		maxX := int(math.Ceil(max3(a.X, b.X, c.X)))
		minY := int(math.Floor(min3(a.Y, b.Y, c.Y)))
		maxY := int(math.Ceil(max3(a.Y, b.Y, c.Y)))

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				px, py := float64(x)+0.5, float64(y)+0.5

				bc := barycentric(a.X, a.Y, b.X, b.Y, c.X, c.Y, px, py)
				if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
					continue
				}

				depth := bc.X*a.Z + bc.Y*b.Z + bc.Z*c.Z
				world := weigh3(v0.World, v1.World, v2.World, bc)
				normal := weigh3(v0.Normal, v1.Normal, v2.Normal, bc).Normalize()
				uv := math3d.V2(
					bc.X*v0.UV.X+bc.Y*v1.UV.X+bc.Z*v2.UV.X,
					bc.X*v0.UV.Y+bc.Y*v1.UV.Y+bc.Z*v2.UV.Y,
				)

				// Diffuse toward the scene origin, where the sun sits.
				intensity := math.Max(0, normal.Dot(world.Negate().Normalize()))

				frag := Fragment{
					Position:  math3d.V2(float64(x), float64(y)),
					Depth:     depth,
					Normal:    normal,
					World:     world,
					UV:        uv,
					Intensity: intensity,
				}
				if !yield(frag) {
					return
				}
			}
		}
	}
}

// barycentric calculates barycentric coordinates for point (px, py) in triangle.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return math3d.V3(-1, -1, -1)
	}

	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

// weigh3 blends three vectors by barycentric weights.
func weigh3(a, b, c math3d.Vec3, bc math3d.Vec3) math3d.Vec3 {
	return a.Scale(bc.X).Add(b.Scale(bc.Y)).Add(c.Scale(bc.Z))
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
