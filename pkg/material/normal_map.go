package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PerturbNormal bends a geometric normal by the tangent-space normal stored
// in the normal map at uv. Without a normal map the normal is returned as is.
func (m *Material) PerturbNormal(normal core.Vec3, uv core.Vec2) core.Vec3 {
	if m.NormalMap == nil {
		return normal
	}
	texel := m.NormalMap.ColorAtUV(uv)
	tangentNormal := core.NewVec3(2*texel.X-255, 2*texel.Y-255, 2*texel.Z-255).Normalize()
	return TangentToObject(tangentNormal, normal)
}

// TangentToObject maps a tangent-space vector into the frame whose z axis is normal.
// The tangent is built from a fixed reference vector not collinear with the normal.
func TangentToObject(v, normal core.Vec3) core.Vec3 {
	n := normal.Normalize()
	reference := core.NewVec3(0, 0, 1)
	if math.Abs(n.Dot(reference)) > 0.999 {
		reference = core.NewVec3(0, 1, 0)
	}
	tangent := reference.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	return tangent.Multiply(v.X).Add(bitangent.Multiply(v.Y)).Add(n.Multiply(v.Z)).Normalize()
}
