package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture is an RGB image sampled by UV coordinates.
// Channels are stored in [0, 255]; rows run top to bottom.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// ErrInvalidTexture is returned for textures without texels or with a pixel
// slice that does not match their size
var ErrInvalidTexture = errors.New("material: invalid texture")

// NewTexture creates a new texture
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Validate checks that the texture has at least one texel and that Pixels
// holds exactly Width*Height of them
func (t *Texture) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", t.Width, t.Height, ErrInvalidTexture)
	}
	if len(t.Pixels) != t.Width*t.Height {
		return fmt.Errorf("%d pixels for %dx%d: %w", len(t.Pixels), t.Width, t.Height, ErrInvalidTexture)
	}
	return nil
}

// ColorAt samples the texture at (u, v) using nearest-neighbor lookup.
// Out-of-range coordinates clamp to the edge texels; v = 0 is the bottom row.
func (t *Texture) ColorAt(u, v float64) core.Vec3 {
	// round(x - 0.5) with halves rounded up is floor(x)
	i := int(math.Floor(u * float64(t.Width)))
	j := int(math.Floor(v * float64(t.Height)))

	i = max(0, min(t.Width-1, i))
	j = max(0, min(t.Height-1, j))

	// Flip v for image coordinates where origin is top-left
	return t.Pixels[(t.Height-1-j)*t.Width+i]
}

// ColorAtUV samples the texture at the given texture coordinate
func (t *Texture) ColorAtUV(uv core.Vec2) core.Vec3 {
	return t.ColorAt(uv.X, uv.Y)
}
