package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/geometry"
)

// Settings contains per-frame rendering configuration
type Settings struct {
	SamplesPerPixel int     // Number of rays per pixel (>= 1)
	BounceLimit     int     // Maximum ray bounce depth (>= 0)
	Gamma           float64 // Gamma correction exponent (> 0)
	NumWorkers      int     // Parallel row workers (0 = CPU count, 1 = serial)
}

// DefaultSettings returns sensible default values
func DefaultSettings() Settings {
	return Settings{
		SamplesPerPixel: 64,
		BounceLimit:     10,
		Gamma:           1.05,
		NumWorkers:      0,
	}
}

// Validate rejects degenerate configurations before they reach the render
// loop, where they would propagate NaN/Inf through the pixel buffer
func (s Settings) Validate() error {
	if s.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be >= 1, got %d", s.SamplesPerPixel)
	}
	if s.BounceLimit < 0 {
		return fmt.Errorf("bounce limit must be >= 0, got %d", s.BounceLimit)
	}
	if s.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", s.Gamma)
	}
	if s.NumWorkers < 0 {
		return fmt.Errorf("worker count must be >= 0, got %d", s.NumWorkers)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() *geometry.World
	GetCameraConfig() CameraConfig
}

// Raytracer renders frames of a scene into a packed 32-bit pixel buffer.
// One Render call performs the entire width*height*samples computation to
// completion before returning; there is no partial delivery or cancellation.
type Raytracer struct {
	scene    Scene
	settings Settings
	width    int
	height   int
	buffer   []uint32
	logger   core.Logger
}

// NewRaytracer creates a new raytracer with default settings
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:    scene,
		settings: DefaultSettings(),
		logger:   logger,
	}
}

// SetSettings validates and applies new rendering settings
func (rt *Raytracer) SetSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	rt.settings = settings
	return nil
}

// Settings returns the current rendering settings
func (rt *Raytracer) Settings() Settings {
	return rt.settings
}

// Buffer returns the current pixel buffer in row-major order.
// The buffer is only valid until the next resize.
func (rt *Raytracer) Buffer() []uint32 {
	return rt.buffer
}

// Size returns the current buffer dimensions
func (rt *Raytracer) Size() (int, int) {
	return rt.width, rt.height
}

// resize reallocates the pixel buffer when the requested dimensions differ
// from the current ones
func (rt *Raytracer) resize(width, height int) {
	if width == rt.width && height == rt.height && rt.buffer != nil {
		return
	}
	rt.width = width
	rt.height = height
	rt.buffer = make([]uint32, width*height)
}

// Render renders one frame at the requested size. A zero dimension is a
// no-op frame: the viewport panel has no area yet.
func (rt *Raytracer) Render(width, height int) (RenderStats, error) {
	if width <= 0 || height <= 0 {
		return RenderStats{}, nil
	}

	start := time.Now()
	rt.resize(width, height)

	cameraConfig := rt.scene.GetCameraConfig()
	cameraConfig.AspectRatio = float64(width) / float64(height)
	camera := NewCamera(cameraConfig)
	world := rt.scene.GetWorld()

	workers := rt.renderRows(camera, world)

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.settings.SamplesPerPixel,
		SamplesPerPixel: rt.settings.SamplesPerPixel,
		Workers:         workers,
		RenderTime:      time.Since(start),
	}

	rt.logger.Printf("Rendered %dx%d: %d samples/pixel, %d workers, %v",
		width, height, stats.SamplesPerPixel, workers, stats.RenderTime)

	return stats, nil
}

// renderRow renders a single row of pixels into the buffer
func (rt *Raytracer) renderRow(camera *Camera, world *geometry.World, j int, sampler core.Sampler) {
	// Guard the single-column/single-row case against division by zero
	uScale := 1.0 / float64(max(rt.width-1, 1))
	vScale := 1.0 / float64(max(rt.height-1, 1))

	for i := 0; i < rt.width; i++ {
		accum := core.NewVec3(0, 0, 0)

		for sample := 0; sample < rt.settings.SamplesPerPixel; sample++ {
			// Jitter within the pixel; v is inverted so row 0 is the image top
			u := (float64(i) + sampler.Get1D()) * uScale
			v := 1.0 - (float64(j)+sampler.Get1D())*vScale

			ray := camera.GetRay(u, v, sampler)
			accum = accum.Add(rt.rayColor(ray, world, rt.settings.BounceLimit, sampler))
		}

		rt.buffer[j*rt.width+i] = PackColor(accum, rt.settings.SamplesPerPixel, rt.settings.Gamma)
	}
}

// rayColor returns the radiance along a ray, recursing through material
// scattering until the bounce budget runs out
func (rt *Raytracer) rayColor(ray core.Ray, world *geometry.World, bounce int, sampler core.Sampler) core.Vec3 {
	// Bounce budget exhausted: no more light is gathered
	if bounce <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// The 0.001 epsilon keeps bounced rays from re-hitting their own origin
	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.NewVec3(0, 0, 0) // absorbed
		}
		return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, world, bounce-1, sampler))
	}

	// Sky gradient: white at the horizon blending to blue overhead
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}
