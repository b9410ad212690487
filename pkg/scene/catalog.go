package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// Config carries optional inputs for building a scene
type Config struct {
	Texture *material.Texture // Replaces the procedural texture in scenes that use one
}

type builder func(cfg Config) (*Scene, error)

var catalog = []struct {
	info  SceneInfo
	build builder
}{
	{
		SceneInfo{"single-sphere", "Single Sphere", "One red sphere under a point light"},
		func(Config) (*Scene, error) { return NewSingleSphereScene(), nil },
	},
	{
		SceneInfo{"default", "Default", "Matte, mirror, glass, ellipsoid and box over a floor with an area light"},
		func(Config) (*Scene, error) { return NewDefaultScene() },
	},
	{
		SceneInfo{"mirrors", "Facing Mirrors", "Two perfect mirrors reflecting each other"},
		func(Config) (*Scene, error) { return NewMirrorsScene(), nil },
	},
	{
		SceneInfo{"cornell", "Cornell Box", "Quad walls, mirror and glass spheres and a box under a ceiling light"},
		func(Config) (*Scene, error) { return NewCornellScene(), nil },
	},
	{
		SceneInfo{"textured", "Textures", "Texture, normal, specular, opacity and occlusion maps"},
		func(cfg Config) (*Scene, error) { return NewTexturedScene(cfg.Texture), nil },
	},
}

// List returns the built-in scenes in display order
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(catalog))
	for _, entry := range catalog {
		infos = append(infos, entry.info)
	}
	return infos
}

// Create builds and validates the built-in scene with the given ID
func Create(id string, cfg Config) (*Scene, error) {
	for _, entry := range catalog {
		if entry.info.ID != id {
			continue
		}
		s, err := entry.build(cfg)
		if err != nil {
			return nil, fmt.Errorf("building scene %q: %w", id, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("validating scene %q: %w", id, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownScene)
}
