package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	UV           [2]float64             `json:"uv"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Traced color of the pixel center
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult is the first object hit by an inspection ray
type InspectResult struct {
	Hit   *geometry.Hit
	Color core.Vec3
}

// inspectPixel casts a ray through the center of image pixel (x, y), with y
// counted from the top row as in the rendered image
func inspectPixel(sc *scene.Scene, opts integrator.Options, width, height, x, y int) InspectResult {
	camera := renderer.NewCamera(sc.CameraConfig, width, height)
	ray := camera.GetRay(x, height-1-y, 0.5, 0.5)

	color := integrator.NewWhittedIntegrator(opts).RayColor(ray, sc, core.NewSeededSampler(0))
	hit, ok := sc.ClosestHit(ray)
	if !ok {
		return InspectResult{Color: color}
	}
	return InspectResult{Hit: hit, Color: color}
}

// extractMaterialInfo describes the surface parameters of a material
func extractMaterialInfo(m *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":        fmt.Sprintf("#%02x%02x%02x", int(m.Color.X), int(m.Color.Y), int(m.Color.Z)),
		"shininess":    m.Shininess,
		"reflectivity": m.Reflectivity,
		"transparency": m.Transparency,
		"diffuse":      m.DiffuseOn,
		"ambient":      m.AmbientOn,
		"specular":     m.SpecularOn,
	}
	if m.Transparency > 0 {
		properties["ior"] = m.IOR
		properties["colorFilter"] = [3]float64{m.ColorFilter.X, m.ColorFilter.Y, m.ColorFilter.Z}
	}
	if m.Glow != nil {
		properties["glow"] = [3]float64{m.Glow.X, m.Glow.Y, m.Glow.Z}
	}

	var maps []string
	for _, tm := range []struct {
		name    string
		texture *material.Texture
	}{
		{"texture", m.Texture},
		{"normal", m.NormalMap},
		{"specular", m.SpecularMap},
		{"opacity", m.OpacityMap},
		{"occlusion", m.AmbientOcclusion},
	} {
		if tm.texture != nil {
			maps = append(maps, tm.name)
		}
	}
	if len(maps) > 0 {
		properties["maps"] = maps
	}
	return properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(p geometry.Primitive) map[string]interface{} {
	properties := make(map[string]interface{})
	transform := p.Transform()

	switch geom := p.(type) {
	case *geometry.Sphere:
		center := transform.ToWorld(core.NewVec3(0, 0, 0))
		properties["center"] = [3]float64{center.X, center.Y, center.Z}

	case *geometry.Quad:
		properties["corner"] = [3]float64{geom.Corner.X, geom.Corner.Y, geom.Corner.Z}
		properties["u"] = [3]float64{geom.U.X, geom.U.Y, geom.U.Z}
		properties["v"] = [3]float64{geom.V.X, geom.V.Y, geom.V.Z}

	case *geometry.Triangle:
		properties["vertices"] = [][3]float64{
			{geom.V0.X, geom.V0.Y, geom.V0.Z},
			{geom.V1.X, geom.V1.Y, geom.V1.Z},
			{geom.V2.X, geom.V2.Y, geom.V2.Z},
		}

	case *geometry.Plane:
		properties["tileSize"] = geom.TileSize
	}
	return properties
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sc, err := scene.Create(req.Scene, scene.Config{})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := inspectPixel(sc, req.Options, req.Width, req.Height, pixelX, pixelY)
	response := InspectResponse{
		Color: [3]float64{result.Color.X, result.Color.Y, result.Color.Z},
	}
	if hit := result.Hit; hit != nil {
		response.Hit = true
		response.GeometryType = scene.PrimitiveKind(hit.Primitive)
		response.Point = [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
		response.Normal = [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
		response.UV = [2]float64{hit.UV.X, hit.UV.Y}
		response.Distance = hit.T
		response.Properties = map[string]interface{}{
			"material": extractMaterialInfo(hit.Material()),
			"geometry": extractGeometryInfo(hit.Primitive),
		}
	}
	writeJSON(w, http.StatusOK, response)
}
