package models

import (
	"math"
	"testing"

	"github.com/Gxrco/planetarium/pkg/math3d"
)

func TestBoundsAndCenter(t *testing.T) {
	m := NewMesh("test")
	m.Vertices = []MeshVertex{
		{Position: math3d.V3(-1, -2, -3)},
		{Position: math3d.V3(3, 2, 1)},
		{Position: math3d.V3(0, 0, 0)},
	}
	m.CalculateBounds()

	if m.BoundsMin != math3d.V3(-1, -2, -3) {
		t.Errorf("BoundsMin = %v", m.BoundsMin)
	}
	if m.BoundsMax != math3d.V3(3, 2, 1) {
		t.Errorf("BoundsMax = %v", m.BoundsMax)
	}
	if c := m.Center(); c != math3d.V3(1, 0, -1) {
		t.Errorf("Center = %v", c)
	}
	if s := m.Size(); s != math3d.V3(4, 4, 4) {
		t.Errorf("Size = %v", s)
	}
}

func TestTransformMovesBounds(t *testing.T) {
	m := NewUVSphere(8, 16)
	m.Transform(math3d.Translate(math3d.V3(10, 0, 0)))

	if c := m.Center(); math.Abs(c.X-10) > epsilon {
		t.Errorf("center after translate = %v, want X=10", c)
	}

	// Normals ignore translation
	for i, v := range m.Vertices {
		if math.Abs(v.Normal.Len()-1) > epsilon {
			t.Fatalf("vertex %d normal length %v after transform", i, v.Normal.Len())
		}
	}
}

func TestLoadGLBMissingFile(t *testing.T) {
	if _, err := LoadGLB("no-such-model.glb"); err == nil {
		t.Error("expected error for missing file")
	}
}
