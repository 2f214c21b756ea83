package scene

import (
	"github.com/Gxrco/planetarium/pkg/render"
)

// skyboxDepth sits behind everything the pipeline can produce.
const skyboxDepth = 1000.0

// Skybox paints a star backdrop behind the whole scene. The texture is
// stretched over the framebuffer and written at far depth so every
// body and trail draws over it.
type Skybox struct {
	texture *render.Texture
}

// NewSkybox loads a backdrop image from path. If path is empty, a
// procedural starfield is generated instead.
func NewSkybox(path string) (*Skybox, error) {
	if path == "" {
		return &Skybox{texture: render.NewStarfieldTexture(512, 512, 1337)}, nil
	}
	tex, err := render.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	return &Skybox{texture: tex}, nil
}

// Render stretches the backdrop over the full framebuffer.
func (s *Skybox) Render(fb *render.Framebuffer) {
	for y := 0; y < fb.Height; y++ {
		ty := y * s.texture.Height / fb.Height
		for x := 0; x < fb.Width; x++ {
			tx := x * s.texture.Width / fb.Width
			fb.SetCurrentColor(s.texture.GetPixel(tx, ty))
			fb.Point(x, y, skyboxDepth)
		}
	}
}
