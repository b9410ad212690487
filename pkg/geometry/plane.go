package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane is the infinite plane y = 0 in object space, placed by its transform.
// Like triangles it is double-sided.
type Plane struct {
	TileSize  float64 // Texture repeat length along x and z
	transform core.Transform
	material  *material.Material
}

// NewPlane creates the plane y = height with texture tiles of the given size
func NewPlane(height, tileSize float64, mat *material.Material) *Plane {
	return &Plane{
		TileSize:  tileSize,
		transform: core.IdentityTransform().Translate(0, height, 0),
		material:  mat,
	}
}

// Rotate returns a copy of the plane rotated by angle radians about axis
func (p *Plane) Rotate(axis core.Vec3, angle float64) *Plane {
	return &Plane{TileSize: p.TileSize, transform: p.transform.Rotate(axis, angle), material: p.material}
}

// Translate returns a copy of the plane moved by (x, y, z)
func (p *Plane) Translate(x, y, z float64) *Plane {
	return &Plane{TileSize: p.TileSize, transform: p.transform.Translate(x, y, z), material: p.material}
}

// LocalIntersect intersects the object-space ray with y = 0
func (p *Plane) LocalIntersect(ray core.Ray) (float64, bool) {
	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(ray.Direction.Y) < 1e-12 {
		return 0, false
	}
	return -ray.Origin.Y / ray.Direction.Y, true
}

// LocalNormal returns +y or -y, whichever faces the incoming ray
func (p *Plane) LocalNormal(localPoint, localDirection core.Vec3) core.Vec3 {
	if localDirection.Y > 0 {
		return core.NewVec3(0, -1, 0)
	}
	return core.NewVec3(0, 1, 0)
}

// UV tiles the texture across the plane
func (p *Plane) UV(localPoint core.Vec3) core.Vec2 {
	size := p.TileSize
	if size <= 0 {
		size = 1
	}
	u := localPoint.X/size - math.Floor(localPoint.X/size)
	v := localPoint.Z/size - math.Floor(localPoint.Z/size)
	return core.NewVec2(u, v)
}

// Surface returns the plane's material
func (p *Plane) Surface() *material.Material {
	return p.material
}

// Transform returns the plane's transform pair
func (p *Plane) Transform() core.Transform {
	return p.transform
}
