package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AreaLight is a rectangular light split into a USteps x VSteps grid of cells.
// A 1x1 light with zero-length edges is a point light.
type AreaLight struct {
	Corner core.Vec3 // Bottom-left corner
	UVec   core.Vec3 // One cell along the u edge (edge / USteps)
	VVec   core.Vec3 // One cell along the v edge (edge / VSteps)
	USteps int
	VSteps int
	Color  core.Vec3 // RGB in [0, 255]
}

// NewAreaLight creates an area light from a corner, two full edge vectors and their subdivisions.
// Step counts below one are raised to one.
func NewAreaLight(corner, uEdge core.Vec3, uSteps int, vEdge core.Vec3, vSteps int, color core.Vec3) *AreaLight {
	uSteps = max(1, uSteps)
	vSteps = max(1, vSteps)
	return &AreaLight{
		Corner: corner,
		UVec:   uEdge.Multiply(1 / float64(uSteps)),
		VVec:   vEdge.Multiply(1 / float64(vSteps)),
		USteps: uSteps,
		VSteps: vSteps,
		Color:  color,
	}
}

// NewPointLight creates a light with all of its area collapsed onto position
func NewPointLight(position, color core.Vec3) *AreaLight {
	return NewAreaLight(position, core.Vec3{}, 1, core.Vec3{}, 1, color)
}

// Samples returns the number of grid cells
func (l *AreaLight) Samples() int {
	return l.USteps * l.VSteps
}

// IsPoint reports whether the light has a single cell and no extent
func (l *AreaLight) IsPoint() bool {
	return l.Samples() == 1 && l.UVec.LengthSquared() == 0 && l.VVec.LengthSquared() == 0
}

// Position returns the centroid of the light, used when it stands in for a point light
func (l *AreaLight) Position() core.Vec3 {
	return l.Corner.
		Add(l.UVec.Multiply(float64(l.USteps) / 2)).
		Add(l.VVec.Multiply(float64(l.VSteps) / 2))
}

// SampleAt returns a point jittered uniformly inside cell (uc, vc).
// The jitter comes from the sampler, so a seeded sampler makes it reproducible.
func (l *AreaLight) SampleAt(uc, vc int, sampler core.Sampler) core.Vec3 {
	jitter := sampler.Get2D()
	return l.Corner.
		Add(l.UVec.Multiply(float64(uc) + jitter.X)).
		Add(l.VVec.Multiply(float64(vc) + jitter.Y))
}

// Cell returns the un-jittered corner of cell (uc, vc)
func (l *AreaLight) Cell(uc, vc int) core.Vec3 {
	return l.Corner.Add(l.UVec.Multiply(float64(uc))).Add(l.VVec.Multiply(float64(vc)))
}
