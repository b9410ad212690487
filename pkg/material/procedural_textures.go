package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *Texture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Determine which check we're in
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewTexture(width, height, pixels)
}

// NewSolidTexture creates a width x height texture filled with one color
func NewSolidTexture(width, height int, color core.Vec3) *Texture {
	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = color
	}
	return NewTexture(width, height, pixels)
}

// NewBumpNormalMap creates a tangent-space normal map of concentric ridges.
// Texels encode normals as (n+1)*127.5 per channel; the flat normal is (127.5, 127.5, 255).
func NewBumpNormalMap(width, height, rings int, strength float64) *Texture {
	pixels := make([]core.Vec3, width*height)
	cx, cy := float64(width-1)/2, float64(height-1)/2
	maxR := max(min(cx, cy), 1)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / maxR
			dy := (float64(y) - cy) / maxR
			r := core.NewVec3(dx, dy, 0).Length()

			// Slope of a sine ridge profile, pointing away from the center
			slope := strength * math.Sin(r*float64(rings)*2*math.Pi)
			var n core.Vec3
			if r > 0 {
				n = core.NewVec3(dx/r*slope, -dy/r*slope, 1).Normalize()
			} else {
				n = core.NewVec3(0, 0, 1)
			}
			pixels[y*width+x] = n.Add(core.NewVec3(1, 1, 1)).Multiply(127.5)
		}
	}

	return NewTexture(width, height, pixels)
}
