package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func testMaterial() *material.Material {
	return material.NewMatte(core.NewVec3(128, 128, 128))
}

func TestSphere_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if tHit, isHit := Intersect(sphere, ray); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", tHit)
	}
}

func TestSphere_DistanceToSurface(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float64
		origin core.Vec3
	}{
		{"unit sphere on axis", core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 0, 5)},
		{"offset sphere", core.NewVec3(3, -2, 1), 2.5, core.NewVec3(-4, 6, 10)},
		{"tiny sphere", core.NewVec3(0.5, 0.5, 0.5), 0.01, core.NewVec3(0, 0, 0)},
		{"large sphere", core.NewVec3(0, -1000, 0), 999, core.NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, testMaterial())
			ray := core.NewRay(tt.origin, tt.center.Subtract(tt.origin))

			tHit, isHit := Intersect(sphere, ray)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			expected := tt.center.Subtract(tt.origin).Length() - tt.radius
			if math.Abs(tHit-expected) > 1e-9*math.Max(1, expected) {
				t.Errorf("Expected t=%f, got t=%f", expected, tHit)
			}
		})
	}
}

func TestSphere_InsideReturnsFarRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 2, testMaterial())
	origin := core.NewVec3(1.5, 1, 1)
	ray := core.NewRay(origin, core.NewVec3(-1, 0, 0))

	tHit, isHit := Intersect(sphere, ray)
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(tHit-2.5) > 1e-9 {
		t.Errorf("Expected exit at t=2.5, got %f", tHit)
	}

	// The exit point lies on the far side of the center
	exit := ray.At(tHit)
	if exit.Subtract(sphere.Transform().ToWorld(core.Vec3{})).Dot(ray.Direction) <= 0 {
		t.Errorf("Exit point %v is not beyond the center", exit)
	}
}

func TestSphere_BehindRayHasNegativeT(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))

	tHit, isHit := Intersect(sphere, ray)
	if isHit && tHit > 0 {
		t.Errorf("Sphere behind the ray must not yield a positive t, got %f", tHit)
	}
}

func TestSphere_ResolveWorldPointAndNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tHit, isHit := Intersect(sphere, ray)
	if !isHit {
		t.Fatal("Expected hit")
	}
	hit := Resolve(sphere, ray, tHit)

	if !hit.Point.ApproxEquals(core.NewVec3(0, 0, -2.5), 1e-9) {
		t.Errorf("Expected point (0,0,-2.5), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEquals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Primitive != sphere || hit.Material() != sphere.Surface() {
		t.Error("Hit should reference the sphere and its material")
	}
}

func TestSphere_NonUniformScaleNormal(t *testing.T) {
	ellipsoid := NewUnitSphere(testMaterial()).Scale(2, 1, 1)
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))

	tHit, isHit := Intersect(ellipsoid, ray)
	if !isHit {
		t.Fatal("Expected hit")
	}
	hit := Resolve(ellipsoid, ray, tHit)

	if !hit.Point.ApproxEquals(core.NewVec3(2, 0, 0), 1e-9) {
		t.Errorf("Expected point (2,0,0), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEquals(core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected normal (1,0,0), got %v", hit.Normal)
	}

	// Off-axis the inverse-transpose normal differs from the naive scaled normal
	ray = core.NewRay(core.NewVec3(math.Sqrt2, 5, 0), core.NewVec3(0, -1, 0))
	tHit, _ = Intersect(ellipsoid, ray)
	hit = Resolve(ellipsoid, ray, tHit)
	expected := core.NewVec3(hit.Point.X/4, hit.Point.Y, 0).Normalize()
	if !hit.Normal.ApproxEquals(expected, 1e-9) {
		t.Errorf("Expected gradient normal %v, got %v", expected, hit.Normal)
	}
}

func TestSphere_TransformIsImmutable(t *testing.T) {
	base := NewUnitSphere(testMaterial())
	moved := base.Translate(10, 0, 0)

	if base.Transform().ToWorld(core.Vec3{}) != (core.Vec3{}) {
		t.Error("Translate must not modify the original sphere")
	}
	if !moved.Transform().ToWorld(core.Vec3{}).Equals(core.NewVec3(10, 0, 0)) {
		t.Error("Translated copy should be centered at (10,0,0)")
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewUnitSphere(testMaterial())

	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"north pole", core.NewVec3(0, 1, 0), -1, 1},
		{"south pole", core.NewVec3(0, -1, 0), -1, 0},
		{"negative x on equator", core.NewVec3(-1, 0, 0), 0, 0.5},
		{"positive z on equator", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"positive x on equator", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"negative z on equator", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphere.UV(tt.point)
			if tt.u >= 0 && math.Abs(uv.X-tt.u) > 1e-9 {
				t.Errorf("Expected u=%f, got %f", tt.u, uv.X)
			}
			if math.Abs(uv.Y-tt.v) > 1e-9 {
				t.Errorf("Expected v=%f, got %f", tt.v, uv.Y)
			}
			if uv.X < 0 || uv.X >= 1 {
				t.Errorf("u=%f outside [0,1)", uv.X)
			}
		})
	}
}
