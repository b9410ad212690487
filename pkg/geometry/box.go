package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Box is an axis-aligned box centered at the origin, made up of 6 quads.
// Rotate and Translate move all faces together.
type Box struct {
	HalfSize core.Vec3 // Half-extents along each axis
	faces    [6]*Quad
}

// NewBox creates a box with the given half-extents, so (1,1,1) is a 2x2x2 cube
func NewBox(halfSize core.Vec3, mat *material.Material) *Box {
	sx, sy, sz := halfSize.X, halfSize.Y, halfSize.Z
	lbb := core.NewVec3(-sx, -sy, -sz) // left-bottom-back
	rtf := core.NewVec3(sx, sy, sz)    // right-top-front

	dx := core.NewVec3(2*sx, 0, 0)
	dy := core.NewVec3(0, 2*sy, 0)
	dz := core.NewVec3(0, 0, 2*sz)

	return &Box{
		HalfSize: halfSize,
		faces: [6]*Quad{
			NewQuad(lbb, dx, dy, mat),                   // back (z-)
			NewQuad(lbb, dy, dz, mat),                   // left (x-)
			NewQuad(lbb, dz, dx, mat),                   // bottom (y-)
			NewQuad(rtf, dy.Negate(), dx.Negate(), mat), // front (z+)
			NewQuad(rtf, dz.Negate(), dy.Negate(), mat), // right (x+)
			NewQuad(rtf, dx.Negate(), dz.Negate(), mat), // top (y+)
		},
	}
}

func (b *Box) apply(f func(*Quad) *Quad) *Box {
	moved := &Box{HalfSize: b.HalfSize}
	for i, face := range b.faces {
		moved.faces[i] = f(face)
	}
	return moved
}

// Rotate returns a copy of the box rotated by angle radians about axis
func (b *Box) Rotate(axis core.Vec3, angle float64) *Box {
	return b.apply(func(q *Quad) *Quad { return q.Rotate(axis, angle) })
}

// Translate returns a copy of the box moved by (x, y, z)
func (b *Box) Translate(x, y, z float64) *Box {
	return b.apply(func(q *Quad) *Quad { return q.Translate(x, y, z) })
}

// Faces returns the six quads for adding to a scene
func (b *Box) Faces() []Primitive {
	faces := make([]Primitive, len(b.faces))
	for i, face := range b.faces {
		faces[i] = face
	}
	return faces
}
