package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Hit contains information about a ray-primitive intersection
type Hit struct {
	T          float64   // Parameter t along the world ray
	Point      core.Vec3 // World-space point of intersection
	Normal     core.Vec3 // Unit world-space normal, after normal mapping
	LocalPoint core.Vec3 // Object-space point of intersection
	UV         core.Vec2 // Texture coordinate at the hit
	Primitive  Primitive // The primitive that was hit
}

// Material returns the material of the hit primitive
func (h *Hit) Material() *material.Material {
	return h.Primitive.Surface()
}

// Intersect maps the world ray into the primitive's object space and returns
// the hit parameter. Since the local ray is the world ray under an affine map,
// the same t addresses the same point in both spaces.
func Intersect(p Primitive, ray core.Ray) (float64, bool) {
	localRay := p.Transform().ToLocal(ray)
	return p.LocalIntersect(localRay)
}

// Resolve computes the world-space point, normal and texture coordinate of a
// hit at parameter t found by Intersect.
func Resolve(p Primitive, ray core.Ray, t float64) *Hit {
	transform := p.Transform()
	localRay := transform.ToLocal(ray)

	// Evaluate the hit in object space, then map it back out
	localPoint := localRay.At(t)
	worldPoint := transform.ToWorld(localPoint)

	uv := p.UV(localPoint)
	localNormal := p.LocalNormal(localPoint, localRay.Direction)
	localNormal = p.Surface().PerturbNormal(localNormal, uv)

	return &Hit{
		T:          t,
		Point:      worldPoint,
		Normal:     transform.TransformNormal(localNormal),
		LocalPoint: localPoint,
		UV:         uv,
		Primitive:  p,
	}
}
