package shading

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Occluder finds the closest primitive along a ray
type Occluder interface {
	ClosestHit(ray core.Ray) (*geometry.Hit, bool)
}

// ShadowTester casts shadow rays toward light sample points
type ShadowTester struct {
	World     Occluder
	Bias      float64
	MaxLayers int // Transparent occluders passed through before giving up
}

var fullyLit = core.NewVec3(1, 1, 1)

// Attenuation returns the per-channel fraction of light reaching point from
// lightPoint. Opaque occluders block completely; transparent ones pass light
// scaled by their transparency and color filter.
func (s ShadowTester) Attenuation(point, normal, lightPoint core.Vec3) core.Vec3 {
	origin := core.OffsetOrigin(point, normal, lightPoint.Subtract(point), s.Bias)
	return s.attenuate(origin, lightPoint, 0)
}

func (s ShadowTester) attenuate(origin, lightPoint core.Vec3, layer int) core.Vec3 {
	toLight := lightPoint.Subtract(origin)
	distance := toLight.Length()
	if distance == 0 {
		return fullyLit
	}

	ray := core.NewRay(origin, toLight)
	hit, isHit := s.World.ClosestHit(ray)
	if !isHit || hit.T >= distance {
		return fullyLit
	}

	mat := hit.Material()
	transparency := mat.TransparencyAt(hit.UV)
	if transparency <= 0 || layer >= s.MaxLayers {
		return core.Vec3{}
	}

	// Continue from just past the occluder toward the same light point
	next := core.OffsetOrigin(hit.Point, hit.Normal, ray.Direction, s.Bias)
	behind := s.attenuate(next, lightPoint, layer+1)
	return behind.MultiplyVec(mat.ColorFilter).Multiply(transparency)
}
