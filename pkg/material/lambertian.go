package material

import (
	"github.com/mzhang233/go-ray-tracing/pkg/core"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// The outgoing direction is the specular reflection perturbed by a random
// unit vector, not the textbook cosine-weighted hemisphere sample.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := rayIn.Direction.Normalize().Reflect(hit.Normal).
		Add(core.SampleUnitVector(sampler))

	// Degenerate direction falls back to the surface normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
