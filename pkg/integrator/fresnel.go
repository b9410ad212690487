package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Schlick returns the Fresnel reflectance for a unit direction hitting a
// surface with the given normal. The normal may face either way; the side the
// ray approaches from decides which medium is outside. Total internal
// reflection returns 1.
func Schlick(direction, normal core.Vec3, ior float64) float64 {
	cosine := -direction.Dot(normal)
	n1, n2 := 1.0, ior
	if cosine < 0 {
		// Inside the volume
		cosine = -cosine
		n1, n2 = ior, 1.0
	}

	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0

	if n1 > n2 {
		eta := n1 / n2
		sin2T := eta * eta * (1 - cosine*cosine)
		if sin2T > 1 {
			return 1
		}
		// Going into the thinner medium the transmitted angle is the larger one
		cosine = math.Sqrt(1 - sin2T)
	}

	x := 1 - cosine
	return r0 + (1-r0)*x*x*x*x*x
}

// Refract bends a unit direction through a surface whose normal faces the
// incoming ray, with eta = n1/n2. It reports false on total internal reflection.
func Refract(direction, normal core.Vec3, eta float64) (core.Vec3, bool) {
	cosI := -direction.Dot(normal)
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	refracted := direction.Multiply(eta).Add(normal.Multiply(eta*cosI - math.Sqrt(k)))
	return refracted.Normalize(), true
}

// Reflect mirrors a direction about the normal
func Reflect(direction, normal core.Vec3) core.Vec3 {
	return direction.Reflect(normal).Normalize()
}
