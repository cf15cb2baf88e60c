package scene

import (
	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/geometry"
	"github.com/mzhang233/go-ray-tracing/pkg/material"
	"github.com/mzhang233/go-ray-tracing/pkg/renderer"
)

// NewDefaultScene creates the showcase scene: three unit spheres with one of
// each material resting on a large ground sphere
func NewDefaultScene() *Scene {
	world := geometry.NewWorld()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	diffuse := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, diffuse))

	// Hollow glass shell: the inner sphere's negative radius flips its
	// normals inward
	glass := material.NewDielectric(1.5)
	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass))
	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), -0.9, material.NewDielectric(1.5)))

	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, metal))

	return &Scene{
		Name:         "default",
		World:        world,
		CameraConfig: defaultCameraConfig(),
		Settings:     renderer.DefaultSettings(),
	}
}
