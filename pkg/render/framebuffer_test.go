package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.SetBackground(RGB(10, 20, 30))
	fb.SetCurrentColor(ColorWhite)
	fb.Point(5, 5, 1)

	fb.Clear()

	if got := fb.GetPixel(5, 5); got != RGB(10, 20, 30) {
		t.Errorf("pixel after clear = %v, want background", got)
	}
	if d := fb.DepthAt(5, 5); d != math.MaxFloat64 {
		t.Errorf("depth after clear = %v, want max", d)
	}
}

func TestPointDepthTest(t *testing.T) {
	fb := NewFramebuffer(16, 16)

	fb.SetCurrentColor(RGB(255, 0, 0))
	fb.Point(3, 3, 5)

	// A farther write must not overwrite
	fb.SetCurrentColor(RGB(0, 255, 0))
	fb.Point(3, 3, 10)
	if got := fb.GetPixel(3, 3); got != RGB(255, 0, 0) {
		t.Errorf("farther point overwrote: %v", got)
	}

	// A nearer write must
	fb.SetCurrentColor(RGB(0, 0, 255))
	fb.Point(3, 3, 1)
	if got := fb.GetPixel(3, 3); got != RGB(0, 0, 255) {
		t.Errorf("nearer point did not overwrite: %v", got)
	}
}

func TestPointOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.SetCurrentColor(ColorWhite)

	// Must not panic
	fb.Point(-1, 0, 1)
	fb.Point(0, -1, 1)
	fb.Point(8, 0, 1)
	fb.Point(0, 8, 1)
}

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.DrawLine(0, 0, 7, 7, ColorWhite)

	if fb.GetPixel(0, 0) != ColorWhite {
		t.Error("line start not drawn")
	}
	if fb.GetPixel(7, 7) != ColorWhite {
		t.Error("line end not drawn")
	}
	if fb.GetPixel(3, 3) != ColorWhite {
		t.Error("diagonal midpoint not drawn")
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.SetBackground(RGB(1, 2, 3))
	fb.Clear()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("screenshot missing: %v", err)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	fb := NewFramebuffer(8, 8)

	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := fb.SavePNG(path); err == nil {
		t.Fatal("SavePNG into a missing directory reported no error")
	}
}
