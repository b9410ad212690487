package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the origin, placed in the world by its transform
type Sphere struct {
	transform core.Transform
	material  *material.Material
}

// NewSphere creates a sphere of the given radius and center
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return NewUnitSphere(mat).
		Scale(radius, radius, radius).
		Translate(center.X, center.Y, center.Z)
}

// NewUnitSphere creates a unit sphere at the origin
func NewUnitSphere(mat *material.Material) *Sphere {
	return &Sphere{
		transform: core.IdentityTransform(),
		material:  mat,
	}
}

// Rotate returns a copy of the sphere rotated by angle radians about axis
func (s *Sphere) Rotate(axis core.Vec3, angle float64) *Sphere {
	return &Sphere{transform: s.transform.Rotate(axis, angle), material: s.material}
}

// Scale returns a copy of the sphere scaled along each axis
func (s *Sphere) Scale(sx, sy, sz float64) *Sphere {
	return &Sphere{transform: s.transform.Scale(sx, sy, sz), material: s.material}
}

// Translate returns a copy of the sphere moved by (x, y, z)
func (s *Sphere) Translate(x, y, z float64) *Sphere {
	return &Sphere{transform: s.transform.Translate(x, y, z), material: s.material}
}

// LocalIntersect solves |o + t*d|^2 = 1 for the object-space ray
func (s *Sphere) LocalIntersect(ray core.Ray) (float64, bool) {
	o := ray.Origin
	d := ray.Direction

	// Quadratic equation coefficients: at² + bt + c = 0
	a := d.Dot(d)
	b := 2 * d.Dot(o)
	c := o.Dot(o) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// From inside, take the far root so the ray exits instead of re-hitting its entry
	if o.LengthSquared() < 1 {
		return (-b + sqrtD) / (2 * a), true
	}
	return (-b - sqrtD) / (2 * a), true
}

// LocalNormal returns the outward normal, which for the unit sphere is the point itself
func (s *Sphere) LocalNormal(localPoint, localDirection core.Vec3) core.Vec3 {
	return localPoint.Normalize()
}

// UV maps the point to spherical coordinates
func (s *Sphere) UV(localPoint core.Vec3) core.Vec2 {
	p := localPoint.Normalize()
	theta := math.Acos(max(-1.0, min(1.0, p.Y)))
	phi := math.Atan2(p.Z, -p.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return core.NewVec2(phi/(2*math.Pi), (math.Pi-theta)/math.Pi)
}

// Surface returns the sphere's material
func (s *Sphere) Surface() *material.Material {
	return s.material
}

// Transform returns the sphere's transform pair
func (s *Sphere) Transform() core.Transform {
	return s.transform
}
