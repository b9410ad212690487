package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadTexture loads a PNG, JPEG, GIF, BMP or TIFF image as a texture.
// Images larger than maxSize on either side are shrunk to fit, keeping the
// aspect ratio; maxSize <= 0 keeps the original size.
func LoadTexture(filename string, maxSize int) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	texture, err := DecodeTexture(file, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return texture, nil
}

// DecodeTexture decodes an image stream into a texture with channels in [0, 255]
func DecodeTexture(r io.Reader, maxSize int) (*material.Texture, error) {
	// Decode image (auto-detects the format from the header)
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image size %dx%d: %w", bounds.Dx(), bounds.Dy(), material.ErrInvalidTexture)
	}
	if maxSize > 0 && (bounds.Dx() > maxSize || bounds.Dy() > maxSize) {
		img = resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Bilinear)
		bounds = img.Bounds()
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)*255/65535,
				float64(g)*255/65535,
				float64(b)*255/65535,
			)
		}
	}

	texture := material.NewTexture(width, height, pixels)
	if err := texture.Validate(); err != nil {
		return nil, err
	}
	return texture, nil
}
