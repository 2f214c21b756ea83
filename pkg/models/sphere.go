package models

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
)

// NewUVSphere builds a unit sphere from latitude stacks and longitude
// slices. Normals point outward and UVs wrap the equirectangular way:
// U follows longitude, V runs 1 at the north pole to 0 at the south.
func NewUVSphere(stacks, slices int) *Mesh {
	m := NewMesh("sphere")

	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		sinT, cosT := math.Sin(theta), math.Cos(theta)

		for j := 0; j <= slices; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			pos := math3d.V3(
				sinT*math.Cos(phi),
				cosT,
				sinT*math.Sin(phi),
			)
			m.Vertices = append(m.Vertices, MeshVertex{
				Position: pos,
				Normal:   pos,
				UV: math3d.V2(
					float64(j)/float64(slices),
					1-float64(i)/float64(stacks),
				),
			})
		}
	}

	cols := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*cols + j
			b := a + cols

			// Counter-clockwise seen from outside, so computed face
			// normals point outward. Skip the degenerate triangle at
			// each pole.
			if i != 0 {
				m.Faces = append(m.Faces, [3]int{a, a + 1, b})
			}
			if i != stacks-1 {
				m.Faces = append(m.Faces, [3]int{a + 1, b + 1, b})
			}
		}
	}

	m.CalculateBounds()
	return m
}

// NewRing builds a flat annulus in the XZ plane between inner and
// outer radius. Normals point up; with no backface culling in the
// rasterizer the ring reads the same from below. U follows the
// circumference, V runs 0 at the inner edge to 1 at the outer.
func NewRing(inner, outer float64, segments int) *Mesh {
	m := NewMesh("ring")

	for j := 0; j <= segments; j++ {
		phi := 2 * math.Pi * float64(j) / float64(segments)
		cosP, sinP := math.Cos(phi), math.Sin(phi)
		u := float64(j) / float64(segments)

		m.Vertices = append(m.Vertices,
			MeshVertex{
				Position: math3d.V3(inner*cosP, 0, inner*sinP),
				Normal:   math3d.Up(),
				UV:       math3d.V2(u, 0),
			},
			MeshVertex{
				Position: math3d.V3(outer*cosP, 0, outer*sinP),
				Normal:   math3d.Up(),
				UV:       math3d.V2(u, 1),
			},
		)
	}

	for j := 0; j < segments; j++ {
		in0 := j * 2
		out0 := in0 + 1
		in1 := in0 + 2
		out1 := in0 + 3

		// Counter-clockwise seen from above, matching the up normals.
		m.Faces = append(m.Faces,
			[3]int{in0, in1, out0},
			[3]int{in1, out1, out0},
		)
	}

	m.CalculateBounds()
	return m
}
