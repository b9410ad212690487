package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrOutOfRange is returned when a material parameter is outside its valid range
var ErrOutOfRange = errors.New("material: value out of range")

// White is the default specular color and specular light
var White = core.NewVec3(255, 255, 255)

// Material describes how a primitive's surface responds to light.
// Colors are RGB triples in [0, 255].
type Material struct {
	Color          core.Vec3 // Base surface color
	AmbientPercent float64   // Fraction of the surface color used as ambient color
	SpecularColor  core.Vec3
	SpecularLight  core.Vec3
	Glow           *core.Vec3 // Fixed color used in place of a traced reflection

	DiffuseOn  bool
	AmbientOn  bool
	SpecularOn bool
	Shininess  float64 // Phong exponent

	Reflectivity float64   // [0, 1]
	Transparency float64   // [0, 1]
	IOR          float64   // Index of refraction
	ColorFilter  core.Vec3 // Per-channel transmittance, applied per unit distance inside the volume

	Texture          *Texture
	NormalMap        *Texture
	SpecularMap      *Texture
	OpacityMap       *Texture
	AmbientOcclusion *Texture
}

// New creates a material with the given color and shading switches
func New(color core.Vec3, diffuseOn, ambientOn, specularOn bool) *Material {
	return &Material{
		Color:          color,
		AmbientPercent: 0.5,
		SpecularColor:  White,
		SpecularLight:  White,
		DiffuseOn:      diffuseOn,
		AmbientOn:      ambientOn,
		SpecularOn:     specularOn,
		Shininess:      200,
		IOR:            1,
		ColorFilter:    core.NewVec3(1, 1, 1),
	}
}

// NewMatte creates a material with ambient and diffuse shading but no highlight
func NewMatte(color core.Vec3) *Material {
	return New(color, true, true, false)
}

// NewMirror creates a fully reflective material
func NewMirror(color core.Vec3) *Material {
	m := New(color, true, true, true)
	m.Reflectivity = 1
	return m
}

// NewGlass creates a reflective and transparent dielectric material
func NewGlass(color core.Vec3, ior float64, filter core.Vec3) *Material {
	m := New(color, false, false, true)
	m.Reflectivity = 1
	m.Transparency = 1
	m.IOR = ior
	m.ColorFilter = filter
	return m
}

// SetReflectivity sets the reflectivity coefficient
func (m *Material) SetReflectivity(ks float64) error {
	if ks < 0 || ks > 1 {
		return fmt.Errorf("reflectivity %g must be between 0 and 1: %w", ks, ErrOutOfRange)
	}
	m.Reflectivity = ks
	return nil
}

// SetTransparency sets the transparency coefficient and index of refraction
func (m *Material) SetTransparency(kt, ior float64) error {
	if kt < 0 || kt > 1 {
		return fmt.Errorf("transparency %g must be between 0 and 1: %w", kt, ErrOutOfRange)
	}
	if !(ior > 0) || math.IsInf(ior, 1) {
		return fmt.Errorf("index of refraction %g must be positive: %w", ior, ErrOutOfRange)
	}
	m.Transparency = kt
	m.IOR = ior
	return nil
}

// SetColorFilter sets the per-channel transmittance
func (m *Material) SetColorFilter(r, g, b float64) error {
	for _, c := range [3]float64{r, g, b} {
		if c < 0 || c > 1 {
			return fmt.Errorf("color filter channel %g must be between 0 and 1: %w", c, ErrOutOfRange)
		}
	}
	m.ColorFilter = core.NewVec3(r, g, b)
	return nil
}

// SetGlow replaces traced reflections with a fixed color
func (m *Material) SetGlow(color core.Vec3) {
	m.Glow = &color
}

// Validate checks every parameter against its valid range
func (m *Material) Validate() error {
	colors := map[string]core.Vec3{
		"color":          m.Color,
		"specular color": m.SpecularColor,
		"specular light": m.SpecularLight,
	}
	if m.Glow != nil {
		colors["glow"] = *m.Glow
	}
	for name, c := range colors {
		if err := validateColor(name, c); err != nil {
			return err
		}
	}
	if m.Shininess < 0 {
		return fmt.Errorf("shininess %g must not be negative: %w", m.Shininess, ErrOutOfRange)
	}
	if m.AmbientPercent < 0 || m.AmbientPercent > 1 {
		return fmt.Errorf("ambient percent %g must be between 0 and 1: %w", m.AmbientPercent, ErrOutOfRange)
	}
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("reflectivity %g must be between 0 and 1: %w", m.Reflectivity, ErrOutOfRange)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency %g must be between 0 and 1: %w", m.Transparency, ErrOutOfRange)
	}
	if !(m.IOR > 0) || math.IsInf(m.IOR, 1) {
		return fmt.Errorf("index of refraction %g must be positive and finite: %w", m.IOR, ErrOutOfRange)
	}
	for _, c := range [3]float64{m.ColorFilter.X, m.ColorFilter.Y, m.ColorFilter.Z} {
		if !(c >= 0 && c <= 1) {
			return fmt.Errorf("color filter channel %g must be between 0 and 1: %w", c, ErrOutOfRange)
		}
	}
	for name, texture := range map[string]*Texture{
		"texture":           m.Texture,
		"normal map":        m.NormalMap,
		"specular map":      m.SpecularMap,
		"opacity map":       m.OpacityMap,
		"ambient occlusion": m.AmbientOcclusion,
	} {
		if texture == nil {
			continue
		}
		if err := texture.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func validateColor(name string, c core.Vec3) error {
	for _, channel := range [3]float64{c.X, c.Y, c.Z} {
		if !(channel >= 0 && channel <= 255) {
			return fmt.Errorf("%s channel %g must be between 0 and 255: %w", name, channel, ErrOutOfRange)
		}
	}
	return nil
}

// ColorAt returns the surface color, from the texture when one is set
func (m *Material) ColorAt(uv core.Vec2) core.Vec3 {
	if m.Texture != nil {
		return m.Texture.ColorAtUV(uv)
	}
	return m.Color
}

// AmbientColorAt returns the surface color toned down by AmbientPercent,
// further darkened by the ambient occlusion map when one is set
func (m *Material) AmbientColorAt(uv core.Vec2) core.Vec3 {
	ambient := m.ColorAt(uv).Multiply(m.AmbientPercent)
	if m.AmbientOcclusion != nil {
		occlusion := m.AmbientOcclusion.ColorAtUV(uv).X / 255
		ambient = ambient.Multiply(occlusion)
	}
	return ambient
}

// SpecularColorAt returns the specular color
func (m *Material) SpecularColorAt(uv core.Vec2) core.Vec3 {
	return m.SpecularColor
}

// SpecularLightAt returns the specular light intensity, from the specular map when one is set
func (m *Material) SpecularLightAt(uv core.Vec2) core.Vec3 {
	if m.SpecularMap != nil {
		return m.SpecularMap.ColorAtUV(uv)
	}
	return m.SpecularLight
}

// TransparencyAt returns the transparency, derived from the opacity map when one is set
func (m *Material) TransparencyAt(uv core.Vec2) float64 {
	if m.OpacityMap != nil {
		opacity := m.OpacityMap.ColorAtUV(uv).X / 255
		return 1 - opacity
	}
	return m.Transparency
}

// ReflectivityAt returns the reflectivity
func (m *Material) ReflectivityAt(uv core.Vec2) float64 {
	return m.Reflectivity
}
