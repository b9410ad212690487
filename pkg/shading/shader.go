package shading

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ShadowMode selects how shadows are tested when soft shadows are off
type ShadowMode int

const (
	// ShadowHard casts one shadow ray at the light's centroid
	ShadowHard ShadowMode = iota
	// ShadowAreaSampled shades from the centroid but averages shadow rays over the light grid
	ShadowAreaSampled
)

// String returns the flag name of the mode
func (m ShadowMode) String() string {
	switch m {
	case ShadowAreaSampled:
		return "sampled"
	default:
		return "hard"
	}
}

// Shader evaluates the local (non-recursive) Phong color at a hit point
type Shader struct {
	Light        *lights.AreaLight
	AmbientLight core.Vec3 // RGB in [0, 255]
	Shadows      ShadowTester

	AmbientOn         bool
	DiffuseOn         bool
	SpecularOn        bool
	SoftShadowsOn     bool
	PointLightShadows ShadowMode
}

// lightTerms holds the light-dependent contributions averaged over samples
type lightTerms struct {
	diffuse     core.Vec3
	specular    core.Vec3
	attenuation core.Vec3
}

// Shade combines ambient, diffuse and specular terms with shadow attenuation.
// The result is in units of [0, 1] per channel but is neither clamped nor
// normalized; highlights may exceed 1.
func (s *Shader) Shade(in Inputs, sampler core.Sampler) core.Vec3 {
	var terms lightTerms
	if s.SoftShadowsOn && !s.Light.IsPoint() {
		terms = s.sampleArea(in, sampler)
	} else {
		terms = s.samplePoint(in, sampler)
	}

	color := core.Vec3{}
	if s.DiffuseOn && in.DiffuseOn {
		color = color.Add(terms.diffuse)
	}
	if s.SpecularOn && in.SpecularOn {
		color = color.Add(terms.specular)
	}
	color = color.MultiplyVec(terms.attenuation)

	if s.AmbientOn && in.AmbientOn {
		color = color.Add(Ambient(in, s.AmbientLight))
	}
	return color
}

// sampleArea evaluates every cell of the light grid at a jittered point
func (s *Shader) sampleArea(in Inputs, sampler core.Sampler) lightTerms {
	var sum lightTerms
	for uc := 0; uc < s.Light.USteps; uc++ {
		for vc := 0; vc < s.Light.VSteps; vc++ {
			p := s.Light.SampleAt(uc, vc, sampler)
			lightDir := p.Subtract(in.Point).Normalize()

			sum.diffuse = sum.diffuse.Add(Diffuse(in, lightDir, s.Light.Color))
			sum.specular = sum.specular.Add(Specular(in, lightDir))
			sum.attenuation = sum.attenuation.Add(s.Shadows.Attenuation(in.Point, in.Normal, p))
		}
	}

	scale := 1.0 / float64(s.Light.Samples())
	return lightTerms{
		diffuse:     sum.diffuse.Multiply(scale),
		specular:    sum.specular.Multiply(scale),
		attenuation: sum.attenuation.Multiply(scale),
	}
}

// samplePoint treats the light as a point at its centroid
func (s *Shader) samplePoint(in Inputs, sampler core.Sampler) lightTerms {
	position := s.Light.Position()
	lightDir := position.Subtract(in.Point).Normalize()

	terms := lightTerms{
		diffuse:  Diffuse(in, lightDir, s.Light.Color),
		specular: Specular(in, lightDir),
	}

	if s.PointLightShadows == ShadowAreaSampled && !s.Light.IsPoint() {
		sum := core.Vec3{}
		for uc := 0; uc < s.Light.USteps; uc++ {
			for vc := 0; vc < s.Light.VSteps; vc++ {
				p := s.Light.SampleAt(uc, vc, sampler)
				sum = sum.Add(s.Shadows.Attenuation(in.Point, in.Normal, p))
			}
		}
		terms.attenuation = sum.Multiply(1.0 / float64(s.Light.Samples()))
	} else {
		terms.attenuation = s.Shadows.Attenuation(in.Point, in.Normal, position)
	}
	return terms
}
