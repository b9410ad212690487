package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidDimensions is returned for non-positive image sizes or sample counts
var ErrInvalidDimensions = errors.New("renderer: invalid dimensions")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	Seed            int64 // Seed for sub-pixel jitter and light sampling
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 1,
		Seed:            42,
	}
}

// Validate checks that the image has pixels and each pixel gets a sample
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size %dx%d: %w", c.Width, c.Height, ErrInvalidDimensions)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%d samples per pixel: %w", c.SamplesPerPixel, ErrInvalidDimensions)
	}
	return nil
}

// Raytracer drives an integrator over every pixel of the image
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	config     SamplingConfig
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(sc *scene.Scene, integ integrator.Integrator, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Raytracer{
		scene:      sc,
		integrator: integ,
		camera:     NewCamera(sc.CameraConfig, config.Width, config.Height),
		config:     config,
		sampler:    core.NewSeededSampler(config.Seed),
		logger:     logger,
	}, nil
}

// RenderPixel averages SamplesPerPixel jittered traces through pixel (i, j).
// A single sample goes through the pixel center.
func (rt *Raytracer) RenderPixel(i, j int) core.Vec3 {
	var ps PixelStats
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		du, dv := 0.5, 0.5
		if rt.config.SamplesPerPixel > 1 {
			jitter := rt.sampler.Get2D()
			du, dv = jitter.X, jitter.Y
		}
		ray := rt.camera.GetRay(i, j, du, dv)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, rt.sampler))
	}
	return ps.GetColor()
}

// RenderPass renders every pixel into an image. Row j = 0 is the bottom of
// the scene and is stored in the last image row.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	start := time.Now()
	rt.logger.Printf("Rendering %dx%d at %d spp\n", width, height, rt.config.SamplesPerPixel)

	sum := core.Vec3{}
	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			pixel := rt.RenderPixel(i, j)
			sum = sum.Add(pixel)
			img.SetRGBA(i, height-1-j, vec3ToColor(pixel))
		}
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		PrimaryRays:     width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		RenderTime:      time.Since(start),
		MeanColor:       sum.Multiply(1.0 / float64(width*height)),
	}
	rt.logger.Printf("Rendered %d primary rays in %v\n", stats.PrimaryRays, stats.RenderTime)
	return img, stats
}

// vec3ToColor converts an RGB color in [0, 255] to RGBA with rounding
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 255)
	return color.RGBA{
		R: uint8(math.Round(c.X)),
		G: uint8(math.Round(c.Y)),
		B: uint8(math.Round(c.Z)),
		A: 255,
	}
}
