package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays from an eye at the origin through an image
// plane at z = -distance
type Camera struct {
	config scene.CameraConfig
	nx, ny int
}

// NewCamera creates a camera for an nx by ny pixel image
func NewCamera(config scene.CameraConfig, nx, ny int) *Camera {
	return &Camera{config: config, nx: nx, ny: ny}
}

// GetRay returns the ray through pixel (i, j) offset by (du, dv) in [0, 1).
// Row j = 0 is the bottom of the image.
func (c *Camera) GetRay(i, j int, du, dv float64) core.Ray {
	cfg := c.config
	u := cfg.Left + (cfg.Right-cfg.Left)*(float64(i)+du)/float64(c.nx)
	v := cfg.Bottom + (cfg.Top-cfg.Bottom)*(float64(j)+dv)/float64(c.ny)
	return core.NewRay(core.Vec3{}, core.NewVec3(u, v, -cfg.Distance))
}
