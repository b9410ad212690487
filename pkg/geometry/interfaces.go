package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is a transformable object that can be hit by rays.
// All geometric queries take object-space arguments; Intersect and Resolve
// handle the mapping to and from world space.
type Primitive interface {
	// LocalIntersect returns the ray parameter of the hit in object space.
	// The local ray direction is not necessarily unit length.
	LocalIntersect(localRay core.Ray) (float64, bool)

	// LocalNormal returns the unit object-space normal at a point on the surface
	LocalNormal(localPoint, localDirection core.Vec3) core.Vec3

	// UV returns the texture coordinate of an object-space surface point
	UV(localPoint core.Vec3) core.Vec2

	// Surface returns the primitive's material
	Surface() *material.Material

	// Transform returns the object-to-world transform pair
	Transform() core.Transform
}
