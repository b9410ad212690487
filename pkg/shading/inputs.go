package shading

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Inputs bundles everything the shading model needs at one hit point.
// Colors are RGB in [0, 255].
type Inputs struct {
	Point         core.Vec3 // World-space hit point
	Normal        core.Vec3 // Unit world-space normal
	View          core.Vec3 // Unit direction from the hit point back toward the ray origin
	Color         core.Vec3
	AmbientColor  core.Vec3
	SpecularColor core.Vec3
	SpecularLight core.Vec3
	Shininess     float64

	DiffuseOn  bool
	AmbientOn  bool
	SpecularOn bool
}

// NewInputs samples the hit primitive's material at the hit's texture coordinate
func NewInputs(hit *geometry.Hit, ray core.Ray) Inputs {
	mat := hit.Material()
	return Inputs{
		Point:         hit.Point,
		Normal:        hit.Normal,
		View:          ray.Direction.Negate().Normalize(),
		Color:         mat.ColorAt(hit.UV),
		AmbientColor:  mat.AmbientColorAt(hit.UV),
		SpecularColor: mat.SpecularColorAt(hit.UV),
		SpecularLight: mat.SpecularLightAt(hit.UV),
		Shininess:     mat.Shininess,
		DiffuseOn:     mat.DiffuseOn,
		AmbientOn:     mat.AmbientOn,
		SpecularOn:    mat.SpecularOn,
	}
}
