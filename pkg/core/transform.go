package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine object-to-world matrix paired with its inverse.
// Values are immutable: every composition returns a new Transform.
type Transform struct {
	Forward mgl64.Mat4 // object space -> world space
	Inverse mgl64.Mat4 // world space -> object space
}

// IdentityTransform returns the transform that leaves space unchanged
func IdentityTransform() Transform {
	return Transform{Forward: mgl64.Ident4(), Inverse: mgl64.Ident4()}
}

// Compose applies m after the current transform.
// Forward becomes m*Forward and Inverse becomes Inverse*m^-1.
func (t Transform) Compose(m, mInv mgl64.Mat4) Transform {
	return Transform{
		Forward: m.Mul4(t.Forward),
		Inverse: t.Inverse.Mul4(mInv),
	}
}

// Translate returns the transform followed by a translation
func (t Transform) Translate(x, y, z float64) Transform {
	return t.Compose(mgl64.Translate3D(x, y, z), mgl64.Translate3D(-x, -y, -z))
}

// Scale returns the transform followed by a non-uniform scale.
// Zero factors produce a singular transform and are rejected by scene validation.
func (t Transform) Scale(sx, sy, sz float64) Transform {
	return t.Compose(mgl64.Scale3D(sx, sy, sz), mgl64.Scale3D(1/sx, 1/sy, 1/sz))
}

// Rotate returns the transform followed by a rotation of angle radians about axis
func (t Transform) Rotate(axis Vec3, angle float64) Transform {
	w := axis.Normalize()
	rotation := mgl64.HomogRotate3D(angle, mgl64.Vec3{w.X, w.Y, w.Z})
	// Rotations are orthonormal, so the transpose is the inverse
	return t.Compose(rotation, rotation.Transpose())
}

// TransformPoint applies the full affine matrix to a position (w = 1)
func TransformPoint(p Vec3, m mgl64.Mat4) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{r[0], r[1], r[2]}
}

// TransformDirection applies only the linear part of the matrix (w = 0).
// The result is not renormalized.
func TransformDirection(d Vec3, m mgl64.Mat4) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{r[0], r[1], r[2]}
}

// TransformNormal maps an object-space normal to world space using the
// inverse-transpose of the forward matrix, then renormalizes.
func (t Transform) TransformNormal(n Vec3) Vec3 {
	return TransformDirection(n, t.Inverse.Transpose()).Normalize()
}

// ToLocal maps a world-space ray into object space. The local direction keeps
// whatever length the inverse matrix gives it so that t stays comparable.
func (t Transform) ToLocal(ray Ray) Ray {
	return Ray{
		Origin:    TransformPoint(ray.Origin, t.Inverse),
		Direction: TransformDirection(ray.Direction, t.Inverse),
	}
}

// ToWorld maps an object-space point to world space
func (t Transform) ToWorld(p Vec3) Vec3 {
	return TransformPoint(p, t.Forward)
}

// IsFinite reports whether both matrices are free of NaN and Inf entries
func (t Transform) IsFinite() bool {
	for i := 0; i < 16; i++ {
		for _, v := range [2]float64{t.Forward[i], t.Inverse[i]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// IsInvertible reports whether the forward matrix has a non-zero determinant
func (t Transform) IsInvertible() bool {
	return math.Abs(t.Forward.Det()) > 1e-12
}
