package scene

import (
	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/geometry"
	"github.com/mzhang233/go-ray-tracing/pkg/renderer"
)

// Scene bundles a world with its camera placement and the render settings
// it looks best under
type Scene struct {
	Name         string
	World        *geometry.World
	CameraConfig renderer.CameraConfig
	Settings     renderer.Settings
}

// GetWorld returns the hittable objects in the scene
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetCameraConfig returns the camera placement for this scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// ByName looks up a built-in scene. The seed only affects scenes with random
// content.
func ByName(name string, seed int64) (*Scene, bool) {
	switch name {
	case "default":
		return NewDefaultScene(), true
	case "cover":
		return NewCoverScene(seed), true
	}
	return nil, false
}

// SceneNames lists the built-in scene names
func SceneNames() []string {
	return []string{"default", "cover"}
}

// defaultCameraConfig is the shared viewpoint for the built-in scenes: raised
// behind the origin, looking down at the sphere arrangement.
// AspectRatio is left zero; the renderer overrides it per frame.
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(0, 4, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}
