package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// Texture coordinates run from (0,0) at the corner to (1,1) at the far corner.
type Quad struct {
	Corner    core.Vec3 // One corner of the quad
	U         core.Vec3 // First edge vector
	V         core.Vec3 // Second edge vector
	normal    core.Vec3 // Unit normal along U x V
	d         float64   // Plane equation constant: normal . p = d
	w         core.Vec3 // Cached n / (n . (U x V)) for planar coordinates
	transform core.Transform
	material  *material.Material
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat *material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:    corner,
		U:         u,
		V:         v,
		normal:    normal,
		d:         normal.Dot(corner),
		w:         cross.Multiply(1.0 / cross.Dot(cross)),
		transform: core.IdentityTransform(),
		material:  mat,
	}
}

func (q *Quad) withTransform(tr core.Transform) *Quad {
	c := *q
	c.transform = tr
	return &c
}

// Rotate returns a copy of the quad rotated by angle radians about axis
func (q *Quad) Rotate(axis core.Vec3, angle float64) *Quad {
	return q.withTransform(q.transform.Rotate(axis, angle))
}

// Scale returns a copy of the quad scaled about the origin
func (q *Quad) Scale(sx, sy, sz float64) *Quad {
	return q.withTransform(q.transform.Scale(sx, sy, sz))
}

// Translate returns a copy of the quad moved by (x, y, z)
func (q *Quad) Translate(x, y, z float64) *Quad {
	return q.withTransform(q.transform.Translate(x, y, z))
}

// LocalIntersect intersects the ray with the quad's plane, then checks the
// planar coordinates of the hit lie inside [0, 1] x [0, 1]
func (q *Quad) LocalIntersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Ray is parallel to the quad
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	alpha, beta := q.planar(ray.At(t))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, false
	}
	return t, true
}

// planar returns the coordinates of p along U and V
func (q *Quad) planar(p core.Vec3) (float64, float64) {
	hitVector := p.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	return alpha, beta
}

// LocalNormal returns the quad normal flipped, if needed, to face the incoming ray
func (q *Quad) LocalNormal(localPoint, localDirection core.Vec3) core.Vec3 {
	if q.normal.Dot(localDirection) > 0 {
		return q.normal.Negate()
	}
	return q.normal
}

// UV returns the planar coordinates of the point
func (q *Quad) UV(localPoint core.Vec3) core.Vec2 {
	alpha, beta := q.planar(localPoint)
	return core.NewVec2(alpha, beta)
}

// Surface returns the quad's material
func (q *Quad) Surface() *material.Material {
	return q.material
}

// Transform returns the quad's transform pair
func (q *Quad) Transform() core.Transform {
	return q.transform
}
