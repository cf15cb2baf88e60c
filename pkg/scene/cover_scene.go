package scene

import (
	"math/rand"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/geometry"
	"github.com/mzhang233/go-ray-tracing/pkg/material"
)

// NewCoverScene creates the default scene plus a random grid of small spheres
// scattered around the large ones. The seed makes a scene reproducible.
func NewCoverScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	base := NewDefaultScene()
	world := base.World

	for i := -11; i < 11; i++ {
		for j := -11; j < 11; j++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(i)+0.9*random.Float64(),
				0.2,
				float64(j)+0.9*random.Float64(),
			)

			// Keep the grid clear of the large metal sphere's footprint
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				gray := 0.5 + 0.5*random.Float64()
				fuzz := 0.05 * random.Float64()
				mat = material.NewMetal(core.NewVec3(gray, gray, gray), fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			if _, isGlass := mat.(*material.Dielectric); isGlass && chooseMat > 0.99 {
				// Hollow glass shell: the inner sphere's negative radius
				// flips its normals inward
				world.Add(geometry.NewSphere(center, 0.2, mat))
				world.Add(geometry.NewSphere(center, -0.15, material.NewDielectric(1.5)))
				continue
			}

			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	return &Scene{
		Name:         "cover",
		World:        world,
		CameraConfig: base.CameraConfig,
		Settings:     base.Settings,
	}
}
