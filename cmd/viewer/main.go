package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/renderer"
	"github.com/mzhang233/go-ray-tracing/pkg/scene"
)

const moveStep = 0.25

// viewer owns the interactive render loop. All mutation happens on the
// frame goroutine through the command channel, so the scene and settings
// need no locking.
type viewer struct {
	session  *renderer.RenderSession
	scene    *scene.Scene
	width    int
	height   int
	commands chan func()

	image      *canvas.Image
	statsLabel *widget.Label
	window     fyne.Window
}

func main() {
	sceneName := flag.String("scene", "default", "Scene: 'default' or 'cover'")
	width := flag.Int("width", 640, "Viewport width in pixels")
	height := flag.Int("height", 360, "Viewport height in pixels")
	seed := flag.Int64("seed", 42, "Seed for scenes with random content")
	flag.Parse()

	sceneObj, ok := scene.ByName(*sceneName, *seed)
	if !ok {
		log.Fatalf("Unknown scene: %s", *sceneName)
	}

	raytracer := renderer.NewRaytracer(sceneObj, nil)
	settings := sceneObj.Settings
	settings.SamplesPerPixel = 8 // keep the viewport responsive
	if err := raytracer.SetSettings(settings); err != nil {
		log.Fatal(err)
	}

	v := &viewer{
		session:  renderer.NewRenderSession(raytracer),
		scene:    sceneObj,
		width:    *width,
		height:   *height,
		commands: make(chan func(), 16),
	}

	a := app.New()
	v.window = a.NewWindow("Ray Tracing")
	v.buildUI()
	v.window.Canvas().SetOnTypedKey(v.handleKey)

	go v.frameLoop()

	v.window.ShowAndRun()
}

func (v *viewer) buildUI() {
	placeholder := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	v.image = canvas.NewImageFromImage(placeholder)
	v.image.FillMode = canvas.ImageFillOriginal

	v.statsLabel = widget.NewLabel("Press Render to start")

	renderButton := widget.NewButton("Render", func() {
		v.session.Trigger()
	})
	playButton := widget.NewButton("Play", nil)
	playButton.OnTapped = func() {
		playing := !v.session.Playing()
		v.session.SetPlaying(playing)
		if playing {
			playButton.SetText("Pause")
		} else {
			playButton.SetText("Play")
		}
	}

	controls := container.NewHBox(renderButton, playButton, v.statsLabel)
	v.window.SetContent(container.NewBorder(nil, controls, nil, nil, v.image))
	v.window.Resize(fyne.NewSize(float32(v.width), float32(v.height)+50))
}

// frameLoop drives the render session at a fixed tick, applying queued
// commands between frames
func (v *viewer) frameLoop() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		for {
			select {
			case cmd := <-v.commands:
				cmd()
				continue
			default:
			}
			break
		}

		stats, rendered, err := v.session.Frame(v.width, v.height)
		if err != nil {
			log.Printf("Render failed: %v", err)
			continue
		}
		if !rendered {
			continue
		}

		raytracer := v.session.Raytracer()
		img := renderer.BufferToImage(raytracer.Buffer(), stats.Width, stats.Height)
		text := fmt.Sprintf("%.0fms | %.1f FPS | %d spp | %d workers",
			float64(stats.RenderTime.Microseconds())/1000.0,
			stats.FPS(), stats.SamplesPerPixel, stats.Workers)

		fyne.Do(func() {
			v.image.Image = img
			v.image.Refresh()
			v.statsLabel.SetText(text)
		})
	}
}

// handleKey adjusts camera and sampling parameters. Every change queues a
// mutation and a re-render.
func (v *viewer) handleKey(key *fyne.KeyEvent) {
	adjust := func(f func()) {
		v.commands <- f
		v.session.Trigger()
	}

	switch key.Name {
	case fyne.KeyW:
		adjust(func() { v.moveCamera(core.NewVec3(0, 0, -moveStep)) })
	case fyne.KeyS:
		adjust(func() { v.moveCamera(core.NewVec3(0, 0, moveStep)) })
	case fyne.KeyA:
		adjust(func() { v.moveCamera(core.NewVec3(-moveStep, 0, 0)) })
	case fyne.KeyD:
		adjust(func() { v.moveCamera(core.NewVec3(moveStep, 0, 0)) })
	case fyne.KeyQ:
		adjust(func() { v.moveCamera(core.NewVec3(0, moveStep, 0)) })
	case fyne.KeyE:
		adjust(func() { v.moveCamera(core.NewVec3(0, -moveStep, 0)) })

	case fyne.KeyUp:
		adjust(func() { v.adjustFov(-5) })
	case fyne.KeyDown:
		adjust(func() { v.adjustFov(5) })
	case fyne.KeyLeft:
		adjust(func() { v.adjustAperture(-0.05) })
	case fyne.KeyRight:
		adjust(func() { v.adjustAperture(0.05) })

	case fyne.KeyPageUp:
		adjust(func() { v.adjustSettings(0, 1) })
	case fyne.KeyPageDown:
		adjust(func() { v.adjustSettings(0, -1) })
	case fyne.KeyRightBracket:
		adjust(func() { v.adjustSettings(4, 0) })
	case fyne.KeyLeftBracket:
		adjust(func() { v.adjustSettings(-4, 0) })

	case fyne.KeySpace:
		v.session.SetPlaying(!v.session.Playing())
	case fyne.KeyR:
		v.session.Trigger()
	}
}

func (v *viewer) moveCamera(delta core.Vec3) {
	v.scene.CameraConfig.Center = v.scene.CameraConfig.Center.Add(delta)
}

func (v *viewer) adjustFov(delta float64) {
	fov := v.scene.CameraConfig.VFov + delta
	if fov < 10 {
		fov = 10
	}
	if fov > 150 {
		fov = 150
	}
	v.scene.CameraConfig.VFov = fov
}

func (v *viewer) adjustAperture(delta float64) {
	aperture := v.scene.CameraConfig.Aperture + delta
	if aperture < 0 {
		aperture = 0
	}
	v.scene.CameraConfig.Aperture = aperture
}

func (v *viewer) adjustSettings(samplesDelta, bouncesDelta int) {
	raytracer := v.session.Raytracer()
	settings := raytracer.Settings()
	settings.SamplesPerPixel += samplesDelta
	if settings.SamplesPerPixel < 1 {
		settings.SamplesPerPixel = 1
	}
	settings.BounceLimit += bouncesDelta
	if settings.BounceLimit < 0 {
		settings.BounceLimit = 0
	}
	if err := raytracer.SetSettings(settings); err != nil {
		log.Printf("Invalid settings: %v", err)
	}
}
