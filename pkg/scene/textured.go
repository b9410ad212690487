package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTexturedScene creates a textured, normal-mapped sphere over a checkered
// plane, beside a panel whose opacity map cuts holes in it. When texture is
// nil the sphere gets a procedural checkerboard.
func NewTexturedScene(texture *material.Texture) *Scene {
	light := lights.NewAreaLight(
		core.NewVec3(-1, 5, -4),
		core.NewVec3(2, 0, 0), 2,
		core.NewVec3(0, 0, -2), 2,
		core.NewVec3(255, 255, 255),
	)
	s := New("textured", light)
	s.AmbientLight = core.NewVec3(140, 140, 140)
	s.Background = core.NewVec3(30, 30, 30)

	if texture == nil {
		texture = material.NewCheckerboardTexture(256, 128, 16,
			core.NewVec3(230, 180, 40), core.NewVec3(40, 60, 160))
	}
	globe := material.New(core.NewVec3(255, 255, 255), true, true, true)
	globe.Shininess = 80
	globe.Texture = texture
	globe.NormalMap = material.NewBumpNormalMap(128, 128, 8, 0.5)
	globe.SpecularMap = material.NewSolidTexture(1, 1, core.NewVec3(120, 120, 120))
	s.Add(geometry.NewSphere(core.NewVec3(0.5, 0, -6), 1.5, globe))

	tiles := material.NewMatte(core.NewVec3(255, 255, 255))
	tiles.Texture = material.NewCheckerboardTexture(64, 64, 32,
		core.NewVec3(220, 220, 220), core.NewVec3(60, 60, 60))
	tiles.AmbientOcclusion = material.NewSolidTexture(1, 1, core.NewVec3(200, 200, 200))
	s.Add(geometry.NewPlane(-1.5, 2, tiles))

	// Screen panel; white texels of the opacity map are opaque
	panel := material.NewMatte(core.NewVec3(200, 60, 60))
	panel.OpacityMap = material.NewCheckerboardTexture(8, 8, 2,
		core.NewVec3(255, 255, 255), core.NewVec3(0, 0, 0))
	s.Add(geometry.NewQuad(core.NewVec3(-4, -1.5, -7), core.NewVec3(2, 0, 2), core.NewVec3(0, 3, 0), panel))

	return s
}
