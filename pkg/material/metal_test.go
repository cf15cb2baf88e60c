package material

import (
	"math/rand"
	"testing"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.6, 0.5)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting a horizontal surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Reflection above the surface should be accepted")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	const tolerance = 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Grazing ray against an opposing normal reflects below the surface
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:  core.NewVec3(1, -1, 0),
		Normal: core.NewVec3(0, -1, 0),
	}

	_, didScatter := metal.Scatter(rayIn, hit, sampler)
	if didScatter {
		t.Error("Ray reflected below the surface should be absorbed")
	}
}

func TestMetal_FuzzPerturbsWithinSphere(t *testing.T) {
	fuzz := 0.3
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), fuzz)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	reflected := core.NewVec3(0, 1, 0)
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			continue // perturbation can push a grazing ray below the surface
		}
		offset := scatter.Scattered.Direction.Subtract(reflected)
		if offset.Length() > fuzz+1e-9 {
			t.Fatalf("Fuzzy reflection %v strays more than fuzz radius from %v", scatter.Scattered.Direction, reflected)
		}
	}
}
