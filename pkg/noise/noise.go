// Package noise wraps OpenSimplex noise behind a frequency-scaled
// generator used by the procedural surface shaders.
package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Generator produces 2D and 3D gradient noise at a fixed frequency.
// Values are in [-1, 1]. It is safe for concurrent reads.
type Generator struct {
	n    opensimplex.Noise
	freq float64
}

// New creates a Generator seeded deterministically. The same seed and
// frequency always produce the same field.
func New(seed int64, frequency float64) *Generator {
	return &Generator{
		n:    opensimplex.New(seed),
		freq: frequency,
	}
}

// Noise2D samples the noise field at (x, y).
func (g *Generator) Noise2D(x, y float64) float64 {
	return g.n.Eval2(x*g.freq, y*g.freq)
}

// Noise3D samples the noise field at (x, y, z).
func (g *Generator) Noise3D(x, y, z float64) float64 {
	return g.n.Eval3(x*g.freq, y*g.freq, z*g.freq)
}
