package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box built from quad walls with a ceiling
// area light, a mirror sphere, a glass sphere and a rotated box
func NewCornellScene() *Scene {
	const (
		left, right  = -3.0, 3.0
		bottom, top  = -2.0, 2.0
		front, back  = -4.0, -10.0
		width, depth = right - left, front - back
		height       = top - bottom
		lightSize    = 1.5
	)

	light := lights.NewAreaLight(
		core.NewVec3(-lightSize/2, top-0.05, -7-lightSize/2),
		core.NewVec3(lightSize, 0, 0), 4,
		core.NewVec3(0, 0, lightSize), 4,
		core.NewVec3(255, 255, 255),
	)
	s := New("cornell", light)
	s.AmbientLight = core.NewVec3(60, 60, 60)

	white := material.NewMatte(core.NewVec3(186, 186, 186))
	red := material.NewMatte(core.NewVec3(166, 13, 13))
	green := material.NewMatte(core.NewVec3(31, 115, 38))

	// Walls, no front wall so the camera can see in
	s.Add(
		geometry.NewQuad(core.NewVec3(left, bottom, back), core.NewVec3(width, 0, 0), core.NewVec3(0, 0, depth), white),
		geometry.NewQuad(core.NewVec3(left, top, back), core.NewVec3(width, 0, 0), core.NewVec3(0, 0, depth), white),
		geometry.NewQuad(core.NewVec3(left, bottom, back), core.NewVec3(width, 0, 0), core.NewVec3(0, height, 0), white),
		geometry.NewQuad(core.NewVec3(left, bottom, back), core.NewVec3(0, 0, depth), core.NewVec3(0, height, 0), red),
		geometry.NewQuad(core.NewVec3(right, bottom, back), core.NewVec3(0, height, 0), core.NewVec3(0, 0, depth), green),
	)

	mirror := material.NewMirror(core.NewVec3(200, 200, 210))
	s.Add(geometry.NewSphere(core.NewVec3(-1.4, bottom+0.8, -8), 0.8, mirror))

	glass := material.NewGlass(core.NewVec3(255, 255, 255), 1.5, core.NewVec3(0.95, 0.98, 0.95))
	s.Add(geometry.NewSphere(core.NewVec3(1.3, bottom+0.7, -6.2), 0.7, glass))

	box := geometry.NewBox(core.NewVec3(0.6, 1.0, 0.6), white).
		Rotate(core.NewVec3(0, 1, 0), 0.3).
		Translate(0.6, bottom+1.0, -8.6)
	s.Add(box.Faces()...)

	return s
}
