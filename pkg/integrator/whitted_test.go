package integrator

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

func noLocalShading() Options {
	opts := DefaultOptions()
	opts.AmbientOn = false
	opts.DiffuseOn = false
	opts.SpecularOn = false
	return opts
}

func TestWhitted_SingleSphereEndToEnd(t *testing.T) {
	red := material.New(core.NewVec3(255, 0, 0), true, true, false)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, red)
	light := lights.NewPointLight(core.NewVec3(0, 5, 2), core.NewVec3(255, 255, 255))
	sc := scene.New("single-sphere", light, sphere)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, ok := sc.ClosestHit(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !hit.Point.ApproxEquals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected hit at (0,0,1), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEquals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	integrator := NewWhittedIntegrator(DefaultOptions())
	color := integrator.RayColor(ray, sc, core.NewSeededSampler(42))

	// Ambient is half the surface color; diffuse is scaled by n.l = 1/sqrt(26)
	expectedRed := (0.5 + 1/math.Sqrt(26)) * 255
	if math.Abs(color.X-expectedRed) > 1e-6 {
		t.Errorf("Expected red %f, got %f", expectedRed, color.X)
	}
	if color.Y != 0 || color.Z != 0 {
		t.Errorf("Expected no green or blue, got %v", color)
	}
	if color.X <= 127.5 || color.X >= 255 {
		t.Errorf("Expected color strictly between ambient and full red, got %v", color)
	}
}

func TestWhitted_OverlappingSpheresPickNearest(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewMatte(core.NewVec3(255, 0, 0)))
	far := geometry.NewSphere(core.NewVec3(0, 0, -3.5), 1.2, material.NewMatte(core.NewVec3(0, 0, 255)))
	light := lights.NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(255, 255, 255))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	integrator := NewWhittedIntegrator(DefaultOptions())
	for _, prims := range [][]geometry.Primitive{{near, far}, {far, near}} {
		color := integrator.RayColor(ray, scene.New("overlap", light, prims...), core.NewSeededSampler(1))
		if color.X <= 0 || color.Z != 0 {
			t.Errorf("Expected the red near sphere, got %v", color)
		}
	}
}

func TestWhitted_MissReturnsBackground(t *testing.T) {
	sc := scene.New("empty", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)))
	sc.Background = core.NewVec3(12, 34, 56)

	color := NewWhittedIntegrator(DefaultOptions()).RayColor(
		core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(1))
	if color != sc.Background {
		t.Errorf("Expected background %v, got %v", sc.Background, color)
	}
}

func TestWhitted_FacingMirrorsTerminate(t *testing.T) {
	silver := material.NewMirror(core.NewVec3(255, 255, 255))
	left := geometry.NewSphere(core.NewVec3(-2, 0, -5), 1.5, silver)
	right := geometry.NewSphere(core.NewVec3(2, 0, -5), 1.5, silver)
	light := lights.NewPointLight(core.NewVec3(0, 5, -5), core.NewVec3(255, 255, 255))
	sc := scene.New("mirrors", light, left, right)
	sc.Background = core.NewVec3(255, 255, 255)

	// Aim at the inner face of the left sphere so the ray bounces between them
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-0.5, 0, -5).Normalize())

	for _, n := range []int{0, 1, 2, 4, 8, 12} {
		opts := DefaultOptions()
		opts.MaxRecursion = n
		color := NewWhittedIntegrator(opts).RayColor(ray, sc, core.NewSeededSampler(7))
		if !color.IsFinite() {
			t.Fatalf("MaxRecursion=%d: non-finite color %v", n, color)
		}
		for _, c := range [3]float64{color.X, color.Y, color.Z} {
			if c < 0 || c > 255 {
				t.Errorf("MaxRecursion=%d: channel %f outside [0, 255]", n, c)
			}
		}
	}
}

func TestWhitted_GlowReplacesReflection(t *testing.T) {
	mirror := material.NewMirror(core.NewVec3(255, 255, 255))
	mirror.SetGlow(core.NewVec3(0, 255, 0))
	sc := scene.New("glow", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)),
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, mirror))
	sc.Background = core.NewVec3(255, 0, 0)

	color := NewWhittedIntegrator(noLocalShading()).RayColor(
		core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(1))
	if !color.ApproxEquals(core.NewVec3(0, 255, 0), 1e-9) {
		t.Errorf("Expected glow color, got %v", color)
	}
}

func TestWhitted_MirrorReflectionLeavesSurface(t *testing.T) {
	mirror := material.NewMirror(core.NewVec3(255, 255, 255))
	floor := geometry.NewPlane(-1, 1, mirror)
	sc := scene.New("floor", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)), floor)
	sc.Background = core.NewVec3(0, 0, 255)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, -1))
	color := NewWhittedIntegrator(noLocalShading()).RayColor(ray, sc, core.NewSeededSampler(1))
	if !color.ApproxEquals(sc.Background, 1e-9) {
		t.Errorf("Expected reflected ray to escape to the background, got %v", color)
	}
}

func TestWhitted_RefractionEntersAndExits(t *testing.T) {
	clear := material.New(core.NewVec3(255, 255, 255), false, false, false)
	if err := clear.SetTransparency(1, 1); err != nil {
		t.Fatalf("SetTransparency: %v", err)
	}
	sc := scene.New("clear", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)),
		geometry.NewSphere(core.NewVec3(0, 0, -4), 1, clear))
	sc.Background = core.NewVec3(10, 20, 30)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0.1, 0.05, -1))

	tests := []struct {
		name         string
		maxRecursion int
		expected     core.Vec3
	}{
		// Entry ray stops at the far wall from inside
		{"truncated inside", 1, core.Vec3{}},
		// Exit ray leaves the far wall instead of re-hitting it
		{"passes through", 2, core.NewVec3(10, 20, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := noLocalShading()
			opts.MaxRecursion = tt.maxRecursion
			color := NewWhittedIntegrator(opts).RayColor(ray, sc, core.NewSeededSampler(1))
			if !color.ApproxEquals(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestWhitted_BeersLawInsideDielectric(t *testing.T) {
	glass := material.NewGlass(core.NewVec3(255, 255, 255), 1, core.NewVec3(0.5, 1, 1))
	sc := scene.New("glass", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)),
		geometry.NewSphere(core.NewVec3(0, 0, -4), 1, glass))
	sc.Background = core.NewVec3(200, 200, 200)

	opts := noLocalShading()
	opts.MaxRecursion = 3
	color := NewWhittedIntegrator(opts).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, core.NewSeededSampler(1))

	// The ray crosses the full diameter, so red is filtered by 0.5^2
	expected := core.NewVec3(50, 200, 200)
	if !color.ApproxEquals(expected, 0.05) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestWhitted_DielectricExitUsesInsideFresnel(t *testing.T) {
	glass := material.NewGlass(core.NewVec3(255, 255, 255), 1.5, core.NewVec3(1, 1, 1))
	glass.SetGlow(core.NewVec3(255, 0, 0))
	sc := scene.New("exit", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)),
		geometry.NewUnitSphere(glass))

	opts := noLocalShading()
	opts.MaxRecursion = 2

	// Starts inside and leaves through (0.6, 0, 0.8) at cos 0.8 to the normal
	ray := core.NewRay(core.NewVec3(0.6, 0, 0), core.NewVec3(0, 0, 1))
	color := NewWhittedIntegrator(opts).RayColor(ray, sc, core.NewSeededSampler(1))

	// Glow stands in for the reflection and the refracted ray escapes to black,
	// so red is 255 times the reflectance from the glass side
	reflectance := 0.04 + 0.96*math.Pow(1-math.Sqrt(0.19), 5)
	expected := core.NewVec3(255*reflectance, 0, 0)
	if !color.ApproxEquals(expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestWhitted_DielectricTotalInternalReflectionStaysFinite(t *testing.T) {
	glass := material.NewGlass(core.NewVec3(255, 255, 255), 2.4, core.NewVec3(1, 1, 1))
	sc := scene.New("diamond", lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(255, 255, 255)),
		geometry.NewSphere(core.NewVec3(0, 0, -4), 1, glass))
	sc.Background = core.NewVec3(100, 150, 200)

	opts := DefaultOptions()
	opts.MaxRecursion = 6
	integrator := NewWhittedIntegrator(opts)

	// Rays near the rim refract steeply and hit the far wall past the critical angle
	for _, x := range []float64{0, 0.1, 0.2, 0.24} {
		color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(x, 0, -1)), sc, core.NewSeededSampler(1))
		if !color.IsFinite() {
			t.Errorf("x=%f: non-finite color %v", x, color)
		}
	}
}

func TestWhitted_SoftShadowsReproducible(t *testing.T) {
	sc, err := scene.NewDefaultScene()
	if err != nil {
		t.Fatalf("NewDefaultScene: %v", err)
	}
	opts := DefaultOptions()
	opts.SoftShadowsOn = true
	integrator := NewWhittedIntegrator(opts)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(-0.3, -0.2, -1))

	first := integrator.RayColor(ray, sc, core.NewSeededSampler(99))
	second := integrator.RayColor(ray, sc, core.NewSeededSampler(99))
	if first != second {
		t.Errorf("Expected identical colors for the same seed, got %v and %v", first, second)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"zero recursion", func(o *Options) { o.MaxRecursion = 0 }, false},
		{"negative recursion", func(o *Options) { o.MaxRecursion = -1 }, true},
		{"negative bias", func(o *Options) { o.ShadowBias = -1e-4 }, true},
		{"negative layers", func(o *Options) { o.MaxShadowLayers = -1 }, true},
		{"unknown shadow mode", func(o *Options) { o.PointLightShadows = shading.ShadowMode(9) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}
