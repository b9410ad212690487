package scene

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	// ErrNoLight is returned when a scene has no light
	ErrNoLight = errors.New("scene: no light")
	// ErrNoPrimitives is returned when a scene has nothing to render
	ErrNoPrimitives = errors.New("scene: no primitives")
	// ErrInvalidTransform is returned for a transform with NaN/Inf entries or a singular matrix
	ErrInvalidTransform = errors.New("scene: invalid transform")
	// ErrUnknownScene is returned by Create for an unregistered scene name
	ErrUnknownScene = errors.New("scene: unknown scene")
)

// CameraConfig describes the image plane seen from an eye at the origin
// looking down -z. The plane sits at z = -Distance and spans [Left, Right] x [Bottom, Top].
type CameraConfig struct {
	Left, Right float64
	Bottom, Top float64
	Distance    float64
}

// DefaultCameraConfig returns a 4x2 image plane at distance one
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{Left: -2, Right: 2, Bottom: -1, Top: 1, Distance: 1}
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Primitives   []geometry.Primitive // Objects in the scene, searched in order
	Light        *lights.AreaLight
	AmbientLight core.Vec3 // Ambient light intensity, RGB in [0, 255]
	Background   core.Vec3 // Color returned for rays that hit nothing
	CameraConfig CameraConfig
}

// New creates a scene with full-intensity ambient light and a black background
func New(name string, light *lights.AreaLight, primitives ...geometry.Primitive) *Scene {
	return &Scene{
		Name:         name,
		Primitives:   primitives,
		Light:        light,
		AmbientLight: core.NewVec3(255, 255, 255),
		CameraConfig: DefaultCameraConfig(),
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// ClosestHit returns the hit with the smallest positive t over all primitives.
// Only the winning hit is resolved into world space.
func (s *Scene) ClosestHit(ray core.Ray) (*geometry.Hit, bool) {
	var closest geometry.Primitive
	closestT := math.Inf(1)

	for _, p := range s.Primitives {
		if t, isHit := geometry.Intersect(p, ray); isHit && t > 0 && t < closestT {
			closest = p
			closestT = t
		}
	}

	if closest == nil {
		return nil, false
	}
	return geometry.Resolve(closest, ray, closestT), true
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Light == nil {
		return ErrNoLight
	}
	if len(s.Primitives) == 0 {
		return ErrNoPrimitives
	}
	for i, p := range s.Primitives {
		transform := p.Transform()
		if !transform.IsFinite() || !transform.IsInvertible() {
			return fmt.Errorf("primitive %d (%s): %w", i, PrimitiveKind(p), ErrInvalidTransform)
		}
		if err := p.Surface().Validate(); err != nil {
			return fmt.Errorf("primitive %d (%s): %w", i, PrimitiveKind(p), err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// PrimitiveKind names the geometry of a primitive for tables and inspection
func PrimitiveKind(p geometry.Primitive) string {
	switch p.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Triangle:
		return "triangle"
	case *geometry.Plane:
		return "plane"
	case *geometry.Quad:
		return "quad"
	default:
		return fmt.Sprintf("%T", p)
	}
}

// Stats renders a table describing the scene's contents
func (s *Scene) Stats() string {
	counts := map[string]int{}
	var order []string
	var reflective, transparent, textured int

	for _, p := range s.Primitives {
		kind := PrimitiveKind(p)
		if counts[kind] == 0 {
			order = append(order, kind)
		}
		counts[kind]++

		mat := p.Surface()
		if mat.Reflectivity > 0 {
			reflective++
		}
		if mat.Transparency > 0 || mat.OpacityMap != nil {
			transparent++
		}
		if mat.Texture != nil || mat.NormalMap != nil {
			textured++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Category", "Item", "Value"})
	table.Append([]string{"Primitives", "---", fmt.Sprintf("%d", len(s.Primitives))})
	for _, kind := range order {
		table.Append([]string{"", kind, fmt.Sprintf("%d", counts[kind])})
	}
	table.Append([]string{"", "reflective", fmt.Sprintf("%d", reflective)})
	table.Append([]string{"", "transparent", fmt.Sprintf("%d", transparent)})
	table.Append([]string{"", "textured", fmt.Sprintf("%d", textured)})
	table.Append([]string{" ", " ", " "})
	if s.Light != nil {
		kind := "area"
		if s.Light.IsPoint() {
			kind = "point"
		}
		table.Append([]string{"Light", kind, fmt.Sprintf("%dx%d samples", s.Light.USteps, s.Light.VSteps)})
		table.Append([]string{"", "centroid", fmtVec(s.Light.Position())})
	} else {
		table.Append([]string{"Light", "none", "-"})
	}
	table.Append([]string{"Ambient", "---", fmtVec(s.AmbientLight)})
	table.SetFooter([]string{"", "Scene", s.Name})
	table.Render()

	return buf.String()
}

func fmtVec(v core.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
