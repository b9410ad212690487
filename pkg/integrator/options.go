package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// ErrInvalidOptions is returned by Options.Validate
var ErrInvalidOptions = errors.New("integrator: invalid options")

// Options switches shading terms on and off and bounds the recursion
type Options struct {
	AmbientOn     bool
	DiffuseOn     bool
	SpecularOn    bool
	SoftShadowsOn bool // Sample the full light grid instead of its centroid
	MaxRecursion  int  // Reflection/refraction depth; 0 disables secondary rays

	PointLightShadows shading.ShadowMode // Shadow test used when soft shadows are off
	ShadowBias        float64            // Offset applied to every secondary ray origin
	MaxShadowLayers   int                // Transparent occluders a shadow ray may pass through
}

// DefaultOptions returns all shading terms on, soft shadows off and three bounces
func DefaultOptions() Options {
	return Options{
		AmbientOn:         true,
		DiffuseOn:         true,
		SpecularOn:        true,
		SoftShadowsOn:     false,
		MaxRecursion:      3,
		PointLightShadows: shading.ShadowHard,
		ShadowBias:        core.DefaultBias,
		MaxShadowLayers:   16,
	}
}

// Validate checks that the numeric options are usable
func (o Options) Validate() error {
	if o.MaxRecursion < 0 {
		return fmt.Errorf("max recursion %d is negative: %w", o.MaxRecursion, ErrInvalidOptions)
	}
	if o.ShadowBias < 0 {
		return fmt.Errorf("shadow bias %g is negative: %w", o.ShadowBias, ErrInvalidOptions)
	}
	if o.MaxShadowLayers < 0 {
		return fmt.Errorf("max shadow layers %d is negative: %w", o.MaxShadowLayers, ErrInvalidOptions)
	}
	if o.PointLightShadows != shading.ShadowHard && o.PointLightShadows != shading.ShadowAreaSampled {
		return fmt.Errorf("unknown point light shadow mode %d: %w", o.PointLightShadows, ErrInvalidOptions)
	}
	return nil
}
