package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene creates two perfect mirrors facing each other with a small
// matte sphere between them, so reflections bounce until MaxRecursion
func NewMirrorsScene() *Scene {
	light := lights.NewPointLight(core.NewVec3(0, 6, -4), core.NewVec3(255, 255, 255))
	s := New("mirrors", light)
	s.AmbientLight = core.NewVec3(100, 100, 100)

	silver := material.NewMirror(core.NewVec3(180, 180, 190))
	s.Add(
		geometry.NewSphere(core.NewVec3(-2.2, 0, -8), 1.5, silver),
		geometry.NewSphere(core.NewVec3(2.2, 0, -8), 1.5, silver),
	)

	green := material.New(core.NewVec3(40, 200, 80), true, true, true)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -7), 0.4, green))

	floor := material.NewMatte(core.NewVec3(150, 150, 150))
	s.Add(geometry.NewPlane(-2, 1, floor))

	return s
}
