package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height   int
	TotalPixels     int           // Total number of pixels rendered
	PrimaryRays     int           // Total number of primary rays traced
	SamplesPerPixel int           // Primary rays per pixel
	RenderTime      time.Duration // Wall time of the pass
	MeanColor       core.Vec3     // Average pixel color, RGB in [0, 255]
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.RenderTime.Seconds()
}

// Table renders the statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Pixels", "SPP", "Primary rays", "Rays/s", "Mean color", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.SamplesPerPixel),
		fmt.Sprintf("%d", s.PrimaryRays),
		fmt.Sprintf("%.0f", s.RaysPerSecond()),
		fmt.Sprintf("(%.1f, %.1f, %.1f)", s.MeanColor.X, s.MeanColor.Y, s.MeanColor.Z),
		s.RenderTime.String(),
	})
	table.Render()
	return buf.String()
}

// PixelStats accumulates the samples of one pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
