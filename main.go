package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mzhang233/go-ray-tracing/pkg/renderer"
	"github.com/mzhang233/go-ray-tracing/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene: 'default' or 'cover'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	samples := flag.Int("samples", 64, "Samples per pixel")
	bounces := flag.Int("bounces", 10, "Maximum ray bounce depth")
	gamma := flag.Float64("gamma", 1.05, "Gamma correction exponent")
	workers := flag.Int("workers", 0, "Render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Seed for scenes with random content")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Ray Tracing")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three material spheres on a ground sphere")
		fmt.Println("  cover   - Default scene plus a random grid of small spheres")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting raytracer...")

	selectedScene, ok := scene.ByName(*sceneName, *seed)
	if !ok {
		fmt.Printf("Unknown scene: %s. Using default scene.\n", *sceneName)
		selectedScene = scene.NewDefaultScene()
	}
	fmt.Printf("Using %s scene...\n", selectedScene.Name)

	// Create output directory for this scene
	outputDir := filepath.Join("output", selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	raytracer := renderer.NewRaytracer(selectedScene, nil)
	err := raytracer.SetSettings(renderer.Settings{
		SamplesPerPixel: *samples,
		BounceLimit:     *bounces,
		Gamma:           *gamma,
		NumWorkers:      *workers,
	})
	if err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		return
	}

	stats, err := raytracer.Render(*width, *height)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		return
	}

	fmt.Printf("Render completed in %v\n", stats.RenderTime)
	fmt.Printf("%d samples/pixel over %d pixels (%d workers)\n",
		stats.SamplesPerPixel, stats.TotalPixels, stats.Workers)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	img := renderer.BufferToImage(raytracer.Buffer(), *width, *height)
	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
