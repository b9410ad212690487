package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// WhittedIntegrator implements recursive Whitted-style ray tracing:
// Phong shading at each hit plus mirror reflection and refraction rays.
type WhittedIntegrator struct {
	options Options
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(options Options) *WhittedIntegrator {
	return &WhittedIntegrator{options: options}
}

// Options returns the options the integrator was built with
func (w *WhittedIntegrator) Options() Options {
	return w.options
}

// RayColor traces a primary ray from depth zero
func (w *WhittedIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	return w.Trace(ray, scene, sampler, 0)
}

// Trace returns the clamped RGB color in [0, 255] seen along ray. Secondary
// rays are only cast while depth < MaxRecursion; beyond that they contribute nothing.
func (w *WhittedIntegrator) Trace(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := scene.ClosestHit(ray)
	if !isHit {
		return scene.Background
	}

	in := shading.NewInputs(hit, ray)
	color := w.shader(scene).Shade(in, sampler)

	if depth < w.options.MaxRecursion {
		secondary := w.secondary(ray, hit, scene, sampler, depth)
		color = color.Add(secondary.Multiply(1.0 / 255))
	}

	return color.Clamp(0, 1).Multiply(255)
}

func (w *WhittedIntegrator) shader(scene *scene.Scene) *shading.Shader {
	return &shading.Shader{
		Light:        scene.Light,
		AmbientLight: scene.AmbientLight,
		Shadows: shading.ShadowTester{
			World:     scene,
			Bias:      w.options.ShadowBias,
			MaxLayers: w.options.MaxShadowLayers,
		},
		AmbientOn:         w.options.AmbientOn,
		DiffuseOn:         w.options.DiffuseOn,
		SpecularOn:        w.options.SpecularOn,
		SoftShadowsOn:     w.options.SoftShadowsOn,
		PointLightShadows: w.options.PointLightShadows,
	}
}

// secondary returns the reflected and refracted light at a hit, in [0, 255] units
func (w *WhittedIntegrator) secondary(ray core.Ray, hit *geometry.Hit, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	mat := hit.Material()
	reflectivity := mat.ReflectivityAt(hit.UV)
	transparency := mat.TransparencyAt(hit.UV)

	switch {
	case reflectivity > 0 && transparency > 0:
		return w.dielectric(ray, hit, scene, sampler, depth)
	case reflectivity > 0:
		return w.reflection(ray, hit, hit.Normal, scene, sampler, depth).Multiply(reflectivity)
	case transparency > 0:
		return w.transmission(ray, hit, scene, sampler, depth).Multiply(transparency)
	}
	return core.Vec3{}
}

// dielectric blends reflection and refraction by Schlick's Fresnel term
func (w *WhittedIntegrator) dielectric(ray core.Ray, hit *geometry.Hit, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	mat := hit.Material()
	normal, eta, entering := orient(ray.Direction, hit.Normal, mat.IOR)

	// Schlick needs the geometric normal to tell which side the ray is on
	reflectance := Schlick(ray.Direction, hit.Normal, mat.IOR)

	refracted := core.Vec3{}
	if reflectance < 1 {
		if direction, ok := Refract(ray.Direction, normal, eta); ok {
			origin := core.OffsetOrigin(hit.Point, normal, direction, w.options.ShadowBias)
			refracted = w.Trace(core.NewRay(origin, direction), scene, sampler, depth+1)
		} else {
			reflectance = 1
		}
	}

	reflected := w.reflection(ray, hit, normal, scene, sampler, depth)

	blend := reflected.Multiply(reflectance).Add(refracted.Multiply(1 - reflectance))
	if !entering {
		// The ray travelled hit.T through the volume to get here
		blend = blend.MultiplyVec(mat.ColorFilter.Pow(hit.T))
	}
	return blend
}

// reflection traces the mirror ray, or returns the material's glow in its place
func (w *WhittedIntegrator) reflection(ray core.Ray, hit *geometry.Hit, normal core.Vec3, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	mat := hit.Material()
	if mat.Glow != nil {
		return *mat.Glow
	}

	direction := Reflect(ray.Direction, normal)
	origin := core.OffsetOrigin(hit.Point, normal, direction, w.options.ShadowBias)
	return w.Trace(core.NewRay(origin, direction), scene, sampler, depth+1)
}

// transmission traces the refracted ray; total internal reflection transmits nothing
func (w *WhittedIntegrator) transmission(ray core.Ray, hit *geometry.Hit, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	normal, eta, _ := orient(ray.Direction, hit.Normal, hit.Material().IOR)

	direction, ok := Refract(ray.Direction, normal, eta)
	if !ok {
		return core.Vec3{}
	}
	origin := core.OffsetOrigin(hit.Point, normal, direction, w.options.ShadowBias)
	return w.Trace(core.NewRay(origin, direction), scene, sampler, depth+1)
}

// orient flips the normal to face the incoming ray and returns the
// n1/n2 ratio for the crossing, plus whether the ray is entering the volume
func orient(direction, normal core.Vec3, ior float64) (core.Vec3, float64, bool) {
	if direction.Dot(normal) < 0 {
		return normal, 1 / ior, true
	}
	return normal.Negate(), ior, false
}
