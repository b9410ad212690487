package core

// DefaultBias is the distance secondary ray origins are pushed off a surface
const DefaultBias = 1e-4

// OffsetOrigin moves point off the surface along normal, onto the side that
// direction travels into. Reflection, refraction and shadow rays all use this
// rule so a new ray never starts behind the surface it leaves.
func OffsetOrigin(point, normal, direction Vec3, bias float64) Vec3 {
	if direction.Dot(normal) >= 0 {
		return point.Add(normal.Multiply(bias))
	}
	return point.Subtract(normal.Multiply(bias))
}
