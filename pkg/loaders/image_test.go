package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// quadImage returns a 2x2 image: white, red on top; green, blue below
func quadImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func checkColor(t *testing.T, label string, got, want core.Vec3) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 || math.Abs(got.Z-want.Z) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

func TestLoadTexture_PNG(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, quadImage()); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	texture, err := LoadTexture(testFile, 0)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if texture.Width != 2 || texture.Height != 2 {
		t.Fatalf("Expected 2x2 texture, got %dx%d", texture.Width, texture.Height)
	}

	// Texture v runs bottom-up, so v near 1 is the top row of the file
	checkColor(t, "top-left", texture.ColorAt(0.1, 0.9), core.NewVec3(255, 255, 255))
	checkColor(t, "top-right", texture.ColorAt(0.9, 0.9), core.NewVec3(255, 0, 0))
	checkColor(t, "bottom-left", texture.ColorAt(0.1, 0.1), core.NewVec3(0, 255, 0))
	checkColor(t, "bottom-right", texture.ColorAt(0.9, 0.1), core.NewVec3(0, 0, 255))
}

func TestDecodeTexture_Formats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, quadImage()) }},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, quadImage()) }},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, quadImage(), nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			texture, err := DecodeTexture(&buf, 0)
			if err != nil {
				t.Fatalf("DecodeTexture: %v", err)
			}
			checkColor(t, "red texel", texture.ColorAt(0.9, 0.9), core.NewVec3(255, 0, 0))
		})
	}
}

func TestDecodeTexture_ShrinksToMaxSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 150, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	texture, err := DecodeTexture(&buf, 16)
	if err != nil {
		t.Fatalf("DecodeTexture: %v", err)
	}
	if texture.Width != 16 || texture.Height != 8 {
		t.Errorf("Expected 16x8 after shrinking, got %dx%d", texture.Width, texture.Height)
	}
	// A flat image stays flat after resampling
	checkColorNear(t, texture.ColorAt(0.5, 0.5), core.NewVec3(100, 150, 200), 1.5)
}

func checkColorNear(t *testing.T, got, want core.Vec3, tolerance float64) {
	t.Helper()
	if !got.ApproxEquals(want, tolerance) {
		t.Errorf("Expected %v within %f, got %v", want, tolerance, got)
	}
}

func TestLoadTexture_Errors(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := DecodeTexture(strings.NewReader("not an image"), 0); err == nil {
		t.Error("Expected error for invalid image data")
	}
}

func TestDecodeTexture_RejectsEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 0, 0))); err != nil {
		t.Fatalf("encoding empty bmp: %v", err)
	}
	if texture, err := DecodeTexture(&buf, 0); err == nil {
		t.Errorf("Expected error for an image without pixels, got %dx%d texture", texture.Width, texture.Height)
	}
}
