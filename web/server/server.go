package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mzhang233/go-ray-tracing/pkg/renderer"
	"github.com/mzhang233/go-ray-tracing/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  // Scene name ("default", "cover")
	Width   int     // Image width
	Height  int     // Image height
	Samples int     // Samples per pixel
	Bounces int     // Maximum ray bounce depth
	Gamma   float64 // Gamma correction exponent
	Seed    int64   // Seed for scenes with random content
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.routes()
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scene.SceneNames())
}

// handleRender renders one frame and returns it as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, ok := scene.ByName(req.Scene, req.Seed)
	if !ok {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, nil)
	err = raytracer.SetSettings(renderer.Settings{
		SamplesPerPixel: req.Samples,
		BounceLimit:     req.Bounces,
		Gamma:           req.Gamma,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid settings: %v", err), http.StatusBadRequest)
		return
	}

	stats, err := raytracer.Render(req.Width, req.Height)
	if err != nil {
		http.Error(w, fmt.Sprintf("Render failed: %v", err), http.StatusInternalServerError)
		return
	}
	log.Printf("Rendered %s scene: %dx%d, %d samples/pixel in %v",
		req.Scene, stats.Width, stats.Height, stats.SamplesPerPixel, stats.RenderTime)

	img := renderer.BufferToImage(raytracer.Buffer(), req.Width, req.Height)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// parseRenderRequest extracts render parameters from query values, falling
// back to defaults for anything unspecified
func (s *Server) parseRenderRequest(query url.Values) (RenderRequest, error) {
	defaults := renderer.DefaultSettings()
	req := RenderRequest{
		Scene:   "default",
		Width:   800,
		Height:  450,
		Samples: defaults.SamplesPerPixel,
		Bounces: defaults.BounceLimit,
		Gamma:   defaults.Gamma,
		Seed:    42,
	}

	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	intParams := []struct {
		name   string
		target *int
	}{
		{"width", &req.Width},
		{"height", &req.Height},
		{"samples", &req.Samples},
		{"bounces", &req.Bounces},
	}
	for _, p := range intParams {
		if v := query.Get(p.name); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return req, fmt.Errorf("invalid %s: %q", p.name, v)
			}
			*p.target = parsed
		}
	}

	if v := query.Get("gamma"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("invalid gamma: %q", v)
		}
		req.Gamma = parsed
	}
	if v := query.Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seed: %q", v)
		}
		req.Seed = parsed
	}

	if req.Width <= 0 || req.Height <= 0 {
		return req, fmt.Errorf("dimensions must be positive, got %dx%d", req.Width, req.Height)
	}
	if req.Width*req.Height > 4096*4096 {
		return req, fmt.Errorf("image too large: %dx%d", req.Width, req.Height)
	}

	return req, nil
}
