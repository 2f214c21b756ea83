package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 2, 2)))

	for b.Loop() {
		_ = m.Inverse()
	}
}

func BenchmarkMat3InverseTranspose(b *testing.B) {
	m := Mat3FromMat4(RotateY(0.5).Mul(ScaleUniform(2)))

	for b.Loop() {
		_ = m.Inverse().Transpose()
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3RotateAround(b *testing.B) {
	v := V3(1, 2, 3)
	axis := V3(0, 1, 0)

	for b.Loop() {
		_ = v.RotateAround(axis, 0.05)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	// Simulate building view-projection like the render loop does
	eye := V3(0, 25, 40)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)
	view := LookAt(eye, target, up)
	proj := Perspective(0.785, 1.333, 0.1, 1000.0)

	for b.Loop() {
		_ = proj.Mul(view)
	}
}
