package render

import (
	"math"
	"testing"

	"github.com/Gxrco/planetarium/pkg/math3d"
)

func screenVertex(x, y, z float64) TransformedVertex {
	return TransformedVertex{
		Screen: math3d.V3(x, y, z),
		Normal: math3d.V3(0, 0, 1),
		World:  math3d.V3(0, 0, -1),
	}
}

func collectFragments(v0, v1, v2 TransformedVertex) []Fragment {
	var frags []Fragment
	for f := range Fragments(v0, v1, v2) {
		frags = append(frags, f)
	}
	return frags
}

func TestFragmentsCoverInterior(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(30, 10, 0.5)
	v2 := screenVertex(10, 30, 0.5)

	frags := collectFragments(v0, v1, v2)
	if len(frags) == 0 {
		t.Fatal("no fragments for a 20x20 right triangle")
	}

	covered := make(map[[2]int]bool, len(frags))
	for _, f := range frags {
		covered[[2]int{int(f.Position.X), int(f.Position.Y)}] = true
	}
	if !covered[[2]int{12, 12}] {
		t.Error("interior pixel (12,12) not covered")
	}
	if covered[[2]int{29, 29}] {
		t.Error("pixel (29,29) outside the triangle was covered")
	}
}

func TestFragmentsBothWindings(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(30, 10, 0.5)
	v2 := screenVertex(10, 30, 0.5)

	cw := collectFragments(v0, v1, v2)
	ccw := collectFragments(v0, v2, v1)

	// Rings are seen from both sides, so neither winding is culled
	if len(cw) == 0 || len(ccw) == 0 {
		t.Errorf("winding culled: cw=%d ccw=%d fragments", len(cw), len(ccw))
	}
	if len(cw) != len(ccw) {
		t.Errorf("winding changed coverage: cw=%d ccw=%d", len(cw), len(ccw))
	}
}

func TestFragmentsDegenerateTriangle(t *testing.T) {
	// Colinear vertices span no area
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(20, 20, 0.5)
	v2 := screenVertex(30, 30, 0.5)

	if frags := collectFragments(v0, v1, v2); len(frags) != 0 {
		t.Errorf("degenerate triangle produced %d fragments", len(frags))
	}
}

func TestFragmentsInterpolateDepth(t *testing.T) {
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(40, 0, 1)
	v2 := screenVertex(0, 40, 0.5)

	for _, f := range collectFragments(v0, v1, v2) {
		if f.Depth < -epsilon || f.Depth > 1+epsilon {
			t.Fatalf("depth %v at (%v, %v) outside vertex range", f.Depth, f.Position.X, f.Position.Y)
		}
	}
}

func TestFragmentsInterpolateUV(t *testing.T) {
	v0 := screenVertex(0, 0, 0.5)
	v0.UV = math3d.V2(0, 0)
	v1 := screenVertex(40, 0, 0.5)
	v1.UV = math3d.V2(1, 0)
	v2 := screenVertex(0, 40, 0.5)
	v2.UV = math3d.V2(0, 1)

	for _, f := range collectFragments(v0, v1, v2) {
		if f.UV.X < -epsilon || f.UV.X > 1+epsilon || f.UV.Y < -epsilon || f.UV.Y > 1+epsilon {
			t.Fatalf("UV %v outside unit square", f.UV)
		}
	}
}

func TestFragmentIntensity(t *testing.T) {
	// Normal facing the viewer gives full intensity
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(30, 10, 0.5)
	v2 := screenVertex(10, 30, 0.5)

	frags := collectFragments(v0, v1, v2)
	if len(frags) == 0 {
		t.Fatal("no fragments")
	}
	for _, f := range frags {
		if math.Abs(f.Intensity-1) > epsilon {
			t.Fatalf("intensity = %v, want 1", f.Intensity)
		}
	}
}

func BenchmarkFragments(b *testing.B) {
	v0 := screenVertex(0, 0, 0.5)
	v1 := screenVertex(100, 0, 0.5)
	v2 := screenVertex(0, 100, 0.5)

	for b.Loop() {
		for range Fragments(v0, v1, v2) {
		}
	}
}
