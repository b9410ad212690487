package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a floor with matte, mirror, glass, ellipsoid and box
// objects lit by a 4x4 area light
func NewDefaultScene() (*Scene, error) {
	light := lights.NewAreaLight(
		core.NewVec3(-1.5, 6, -5),
		core.NewVec3(3, 0, 0), 4,
		core.NewVec3(0, 0, -3), 4,
		core.NewVec3(255, 255, 255),
	)
	s := New("default", light)
	s.AmbientLight = core.NewVec3(120, 120, 120)
	s.Background = core.NewVec3(20, 24, 40)

	// Floor made of two triangles
	floor := material.NewMatte(core.NewVec3(200, 200, 190))
	s.Add(NewFloor(-1.5, -6, 6, -2, -14, floor)...)

	red := material.New(core.NewVec3(200, 40, 40), true, true, true)
	red.Shininess = 50
	s.Add(geometry.NewSphere(core.NewVec3(-2.5, -0.5, -7), 1, red))

	mirror := material.NewMirror(core.NewVec3(220, 220, 220))
	if err := mirror.SetReflectivity(0.8); err != nil {
		return nil, err
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, -0.3, -8.5), 1.2, mirror))

	glass := material.NewGlass(core.NewVec3(255, 255, 255), 1.5, core.NewVec3(0.9, 0.95, 1.0))
	s.Add(geometry.NewSphere(core.NewVec3(2.3, -0.6, -6), 0.9, glass))

	// Ellipsoid: squashed unit sphere tilted about z
	blue := material.New(core.NewVec3(40, 80, 220), true, true, true)
	ellipsoid := geometry.NewUnitSphere(blue).
		Scale(1.2, 0.5, 0.5).
		Rotate(core.NewVec3(0, 0, 1), math.Pi/6).
		Translate(0, 1.8, -9)
	s.Add(ellipsoid)

	gold := material.New(core.NewVec3(220, 170, 50), true, true, true)
	gold.Shininess = 30
	crate := geometry.NewBox(core.NewVec3(0.5, 0.5, 0.5), gold).
		Rotate(core.NewVec3(0, 1, 0), math.Pi/5).
		Translate(-0.6, -1.0, -5.2)
	s.Add(crate.Faces()...)

	return s, nil
}

// NewFloor returns two triangles covering the rectangle [x0, x1] x [z0, z1] at height y
func NewFloor(y, x0, x1, z0, z1 float64, mat *material.Material) []geometry.Primitive {
	a := core.NewVec3(x0, y, z0)
	b := core.NewVec3(x1, y, z0)
	c := core.NewVec3(x1, y, z1)
	d := core.NewVec3(x0, y, z1)
	return []geometry.Primitive{
		geometry.NewTriangle(a, b, c, mat),
		geometry.NewTriangle(a, c, d, mat),
	}
}
