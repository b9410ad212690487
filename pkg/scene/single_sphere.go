package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSingleSphereScene creates one red unit sphere under a point light.
// The sphere sits five units in front of the camera, with the light five
// units above and two units toward the camera from its center.
func NewSingleSphereScene() *Scene {
	red := material.NewMatte(core.NewVec3(255, 0, 0))
	light := lights.NewPointLight(core.NewVec3(0, 5, -3), core.NewVec3(255, 255, 255))
	return New("single-sphere", light, geometry.NewSphere(core.NewVec3(0, 0, -5), 1, red))
}
