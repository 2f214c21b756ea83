// Package models provides mesh generation and loading for the
// planetarium: procedural spheres and rings, plus glTF ships.
package models

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/render"
)

// Mesh represents an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    [][3]int // Indices into Vertices

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([][3]int, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// BoundingRadius returns the radius of the sphere around the origin
// that contains every vertex, for frustum culling.
func (m *Mesh) BoundingRadius() float64 {
	var r float64
	for _, v := range m.Vertices {
		r = math.Max(r, v.Position.Len())
	}
	return r
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateSmoothNormals computes averaged normals for smooth shading.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	// Accumulate face normals per vertex
	for _, f := range m.Faces {
		v0 := m.Vertices[f[0]].Position
		v1 := m.Vertices[f[1]].Position
		v2 := m.Vertices[f[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2) // Don't normalize yet

		m.Vertices[f[0]].Normal = m.Vertices[f[0]].Normal.Add(normal)
		m.Vertices[f[1]].Normal = m.Vertices[f[1]].Normal.Add(normal)
		m.Vertices[f[2]].Normal = m.Vertices[f[2]].Normal.Add(normal)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
		m.Vertices[i].Normal = mat.MulVec3Dir(m.Vertices[i].Normal).Normalize()
	}
	m.CalculateBounds()
}

// VertexArray flattens the indexed faces into a triangle list ready
// for the vertex stage: three render.Vertex per face, in face order.
func (m *Mesh) VertexArray() []render.Vertex {
	out := make([]render.Vertex, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, idx := range f {
			v := m.Vertices[idx]
			out = append(out, render.Vertex{
				Position: v.Position,
				Normal:   v.Normal,
				UV:       v.UV,
			})
		}
	}
	return out
}
