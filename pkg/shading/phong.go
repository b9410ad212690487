package shading

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Diffuse returns the Lambertian term for a unit light direction, in [0, 1] per channel
func Diffuse(in Inputs, lightDir, lightColor core.Vec3) core.Vec3 {
	cosine := math.Max(0, in.Normal.Dot(lightDir))
	return in.Color.MultiplyVec(lightColor).Multiply(cosine / (255 * 255))
}

// Ambient returns the ambient term; it does not depend on any light direction
func Ambient(in Inputs, ambientLight core.Vec3) core.Vec3 {
	return in.AmbientColor.MultiplyVec(ambientLight).Multiply(1.0 / (255 * 255))
}

// Specular returns the Blinn-Phong highlight for a unit light direction
func Specular(in Inputs, lightDir core.Vec3) core.Vec3 {
	halfVector := in.View.Add(lightDir).Normalize()
	cosine := math.Max(0, in.Normal.Dot(halfVector))
	highlight := math.Pow(cosine, in.Shininess)
	return in.SpecularColor.MultiplyVec(in.SpecularLight).Multiply(highlight / (255 * 255))
}
