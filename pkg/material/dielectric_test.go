package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
)

func TestDielectric_BasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	// Clear glass: attenuation is white
	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}
}

func TestDielectric_ReflectionAndRefractionBothOccur(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)

		// Reflection leaves the surface (positive Y), refraction enters it
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection {
		t.Error("Expected some rays to reflect at 45 degrees")
	}
	if !hasRefraction {
		t.Error("Expected some rays to refract at 45 degrees")
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting glass at a grazing angle: ratio*sinTheta > 1, refraction impossible
	rayDirection := core.NewVec3(1, -0.3, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false, // inside the glass
	}

	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Fatalf("Expected total internal reflection, got direction %v", result.Scattered.Direction)
		}
	}
}

func TestDielectric_NormalIncidenceNeverForcedToReflect(t *testing.T) {
	glass := NewDielectric(1.5)

	// cosTheta=1 gives sinTheta=0, so refraction is always geometrically possible;
	// the reflect/refract choice is purely the reflectance-vs-random draw
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	hasRefraction := false
	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y < 0 {
			hasRefraction = true
			break
		}
	}
	if !hasRefraction {
		t.Error("Refraction should be possible at normal incidence")
	}
}

func TestReflectance_SchlickApproximation(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		// r0 = ((1-r)/(1+r))² ; at cosine=1 the polynomial term vanishes
		{"Normal incidence glass", 1.0, 1.0 / 1.5, math.Pow((1-1.0/1.5)/(1+1.0/1.5), 2)},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %v, got %v", tt.expected, got)
			}
		})
	}
}
