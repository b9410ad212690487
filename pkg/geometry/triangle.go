package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon is the smallest |determinant| accepted before a ray is
// treated as parallel to the triangle's plane
const parallelEpsilon = 1e-12

// Triangle represents a single triangle defined by three object-space vertices
type Triangle struct {
	V0, V1, V2    core.Vec3 // The three vertices
	UV0, UV1, UV2 core.Vec2 // Per-vertex texture coordinates
	transform     core.Transform
	material      *material.Material
	normal        core.Vec3 // Cached geometric normal (V1-V0)x(V2-V0)
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	return NewTriangleWithUV(v0, v1, v2,
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1), mat)
}

// NewTriangleWithUV creates a new triangle with explicit per-vertex texture coordinates
func NewTriangleWithUV(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat *material.Material) *Triangle {
	return &Triangle{
		V0:        v0,
		V1:        v1,
		V2:        v2,
		UV0:       uv0,
		UV1:       uv1,
		UV2:       uv2,
		transform: core.IdentityTransform(),
		material:  mat,
		normal:    v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
	}
}

func (t *Triangle) withTransform(tr core.Transform) *Triangle {
	c := *t
	c.transform = tr
	return &c
}

// Rotate returns a copy of the triangle rotated by angle radians about axis
func (t *Triangle) Rotate(axis core.Vec3, angle float64) *Triangle {
	return t.withTransform(t.transform.Rotate(axis, angle))
}

// Scale returns a copy of the triangle scaled along each axis
func (t *Triangle) Scale(sx, sy, sz float64) *Triangle {
	return t.withTransform(t.transform.Scale(sx, sy, sz))
}

// Translate returns a copy of the triangle moved by (x, y, z)
func (t *Triangle) Translate(x, y, z float64) *Triangle {
	return t.withTransform(t.transform.Translate(x, y, z))
}

// LocalIntersect solves o + t*d = V0 + beta*(V1-V0) + gamma*(V2-V0) with Cramer's rule
func (t *Triangle) LocalIntersect(ray core.Ray) (float64, bool) {
	// Columns of the 3x3 system
	a := t.V0.X - t.V1.X
	b := t.V0.Y - t.V1.Y
	c := t.V0.Z - t.V1.Z
	d := t.V0.X - t.V2.X
	e := t.V0.Y - t.V2.Y
	f := t.V0.Z - t.V2.Z
	g := ray.Direction.X
	h := ray.Direction.Y
	i := ray.Direction.Z
	j := t.V0.X - ray.Origin.X
	k := t.V0.Y - ray.Origin.Y
	l := t.V0.Z - ray.Origin.Z

	eiMinusHf := e*i - h*f
	gfMinusDi := g*f - d*i
	dhMinusEg := d*h - e*g
	akMinusJb := a*k - j*b
	jcMinusAl := j*c - a*l
	blMinusKc := b*l - k*c

	m := a*eiMinusHf + b*gfMinusDi + c*dhMinusEg

	// Ray lies in or parallel to the plane of the triangle
	if math.Abs(m) < parallelEpsilon {
		return 0, false
	}

	beta := (j*eiMinusHf + k*gfMinusDi + l*dhMinusEg) / m
	gamma := (i*akMinusJb + h*jcMinusAl + g*blMinusKc) / m
	if beta < 0 || gamma < 0 || beta+gamma > 1 {
		return 0, false
	}

	return -(f*akMinusJb + e*jcMinusAl + d*blMinusKc) / m, true
}

// LocalNormal returns the plane normal flipped, if needed, to face the incoming ray.
// This makes triangles double-sided regardless of winding order.
func (t *Triangle) LocalNormal(localPoint, localDirection core.Vec3) core.Vec3 {
	if t.normal.Dot(localDirection.Negate()) < 0 {
		return t.normal.Negate()
	}
	return t.normal
}

// Barycentric returns the weights of V0, V1, V2 for a point in the triangle's plane
func (t *Triangle) Barycentric(p core.Vec3) (w0, w1, w2 float64) {
	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)
	vp := p.Subtract(t.V0)

	d11 := e1.Dot(e1)
	d12 := e1.Dot(e2)
	d22 := e2.Dot(e2)
	dp1 := vp.Dot(e1)
	dp2 := vp.Dot(e2)

	denom := d11*d22 - d12*d12
	if denom == 0 {
		return 1, 0, 0
	}
	w1 = (d22*dp1 - d12*dp2) / denom
	w2 = (d11*dp2 - d12*dp1) / denom
	return 1 - w1 - w2, w1, w2
}

// UV interpolates the per-vertex texture coordinates
func (t *Triangle) UV(localPoint core.Vec3) core.Vec2 {
	w0, w1, w2 := t.Barycentric(localPoint)
	return t.UV0.Multiply(w0).Add(t.UV1.Multiply(w1)).Add(t.UV2.Multiply(w2))
}

// Surface returns the triangle's material
func (t *Triangle) Surface() *material.Material {
	return t.material
}

// Transform returns the triangle's transform pair
func (t *Triangle) Transform() core.Transform {
	return t.transform
}

// GetNormal returns the triangle's geometric normal following vertex winding
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
