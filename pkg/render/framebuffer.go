package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is a 2D array of pixels with a matching depth buffer.
// We use double vertical resolution by using half-block characters (▀▄).
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
	Depth  []float64    // Row-major depth data, smaller is nearer

	background color.RGBA
	current    color.RGBA
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:      width,
		Height:     height,
		Pixels:     make([]color.RGBA, width*height),
		Depth:      make([]float64, width*height),
		background: RGB(0, 0, 0),
		current:    RGB(255, 255, 255),
	}
	fb.Clear()
	return fb
}

// SetBackground sets the color Clear fills with.
func (fb *Framebuffer) SetBackground(c color.RGBA) {
	fb.background = c
}

// SetCurrentColor sets the color Point writes.
func (fb *Framebuffer) SetCurrentColor(c color.RGBA) {
	fb.current = c
}

// Clear fills the pixels with the background color and resets every
// depth entry to the far plane.
func (fb *Framebuffer) Clear() {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	// Copy-doubling is faster than a per-element loop.
	fb.Pixels[0] = fb.background
	fb.Depth[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// Point writes the current color at (x, y) if depth is nearer than
// what the depth buffer holds. Out-of-bounds writes are ignored.
func (fb *Framebuffer) Point(x, y int, depth float64) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth >= fb.Depth[i] {
		return
	}
	fb.Depth[i] = depth
	fb.Pixels[i] = fb.current
}

// DepthAt returns the depth at (x, y), or the far plane out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.MaxFloat64
	}
	return fb.Depth[y*fb.Width+x]
}

// SetPixel sets a pixel at (x, y) to the given color, bypassing the
// depth test. Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
