package lights

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewAreaLight_Derived(t *testing.T) {
	light := NewAreaLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0), 4,
		core.NewVec3(0, 0, 2), 2,
		core.NewVec3(255, 255, 255),
	)

	if light.Samples() != 8 {
		t.Errorf("Expected 8 samples, got %d", light.Samples())
	}
	if !light.UVec.Equals(core.NewVec3(0.5, 0, 0)) {
		t.Errorf("Expected u cell (0.5,0,0), got %v", light.UVec)
	}
	if !light.VVec.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected v cell (0,0,1), got %v", light.VVec)
	}
	if !light.Position().Equals(core.NewVec3(0, 5, 0)) {
		t.Errorf("Expected centroid (0,5,0), got %v", light.Position())
	}
	if light.IsPoint() {
		t.Error("Area light should not report itself as a point light")
	}
}

func TestNewAreaLight_ClampsSteps(t *testing.T) {
	light := NewAreaLight(core.Vec3{}, core.NewVec3(1, 0, 0), 0, core.NewVec3(0, 1, 0), -3, core.Vec3{})
	if light.USteps != 1 || light.VSteps != 1 {
		t.Errorf("Expected steps clamped to 1, got %dx%d", light.USteps, light.VSteps)
	}
}

func TestAreaLight_SampleAtStaysInCell(t *testing.T) {
	light := NewAreaLight(
		core.NewVec3(0, 10, 0),
		core.NewVec3(3, 0, 0), 3,
		core.NewVec3(0, 0, 3), 3,
		core.NewVec3(255, 255, 255),
	)
	sampler := core.NewSeededSampler(42)

	for uc := 0; uc < light.USteps; uc++ {
		for vc := 0; vc < light.VSteps; vc++ {
			for i := 0; i < 20; i++ {
				p := light.SampleAt(uc, vc, sampler)
				if p.X < float64(uc) || p.X > float64(uc+1) ||
					p.Z < float64(vc) || p.Z > float64(vc+1) || p.Y != 10 {
					t.Fatalf("Sample %v outside cell (%d,%d)", p, uc, vc)
				}
			}
		}
	}
}

func TestAreaLight_SampleAtReproducibleWithSeed(t *testing.T) {
	light := NewAreaLight(core.Vec3{}, core.NewVec3(1, 0, 0), 2, core.NewVec3(0, 1, 0), 2, core.Vec3{})
	a := core.NewSeededSampler(99)
	b := core.NewSeededSampler(99)
	for i := 0; i < 5; i++ {
		if light.SampleAt(1, 1, a) != light.SampleAt(1, 1, b) {
			t.Fatal("Equal seeds should produce equal samples")
		}
	}

	fixed := core.NewConstantSampler(0.5)
	if p := light.SampleAt(1, 0, fixed); !p.Equals(core.NewVec3(0.75, 0.25, 0)) {
		t.Errorf("Expected cell center (0.75,0.25,0), got %v", p)
	}
}

func TestNewPointLight(t *testing.T) {
	pos := core.NewVec3(1, 2, 3)
	light := NewPointLight(pos, core.NewVec3(255, 0, 0))

	if !light.IsPoint() {
		t.Error("Expected a point light")
	}
	if light.Position() != pos {
		t.Errorf("Expected position %v, got %v", pos, light.Position())
	}
	if p := light.SampleAt(0, 0, core.NewSeededSampler(1)); p != pos {
		t.Errorf("Point light samples must be its position, got %v", p)
	}
}
