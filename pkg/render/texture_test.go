package render

import (
	"testing"
)

func TestStarfieldTexture(t *testing.T) {
	tex := NewStarfieldTexture(128, 128, 1337)

	if tex.Width != 128 || tex.Height != 128 {
		t.Fatalf("size = %dx%d, want 128x128", tex.Width, tex.Height)
	}

	stars := 0
	for y := 0; y < tex.Height; y++ {
		for x := 0; x < tex.Width; x++ {
			if c := tex.GetPixel(x, y); c != ColorSpace {
				stars++
				if c.R != c.G || c.G != c.B {
					t.Fatalf("star at (%d,%d) is not white: %v", x, y, c)
				}
			}
		}
	}
	if stars == 0 {
		t.Error("starfield has no stars")
	}
}

func TestStarfieldDeterministic(t *testing.T) {
	a := NewStarfieldTexture(64, 64, 42)
	b := NewStarfieldTexture(64, 64, 42)

	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatal("same seed produced different starfields")
		}
	}
}

func TestSampleWraps(t *testing.T) {
	tex := NewTexture(4, 4)
	tex.SetPixel(0, 3, RGB(200, 0, 0)) // V is flipped on sample

	got := tex.Sample(0, 0)
	wrapped := tex.Sample(1, 1) // wraps back to the same texel
	if got != wrapped {
		t.Errorf("wrap mismatch: %v vs %v", got, wrapped)
	}
}

func TestLoadGIFFramesMissing(t *testing.T) {
	if _, err := LoadGIFFrames("does-not-exist.gif"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMultiplyColor(t *testing.T) {
	c := MultiplyColor(RGB(100, 200, 50), 2)
	if c.G != 255 {
		t.Errorf("green should clamp at 255, got %d", c.G)
	}
	if c.R != 200 || c.B != 100 {
		t.Errorf("got %v, want doubled channels", c)
	}
}
