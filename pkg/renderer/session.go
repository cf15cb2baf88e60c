package renderer

import "sync"

// RenderSession drives a Raytracer from a frame loop. In idle mode a frame
// is rendered only after an explicit Trigger call; in playing mode every
// Frame call renders. Idle is the default so a static scene costs nothing
// between parameter changes.
type RenderSession struct {
	mu        sync.Mutex
	raytracer *Raytracer
	playing   bool
	triggered bool
}

// NewRenderSession creates a session in idle mode with one render pending,
// so the first frame always produces an image.
func NewRenderSession(raytracer *Raytracer) *RenderSession {
	return &RenderSession{
		raytracer: raytracer,
		triggered: true,
	}
}

// Raytracer returns the underlying raytracer
func (s *RenderSession) Raytracer() *Raytracer {
	return s.raytracer
}

// Trigger requests a single render on the next Frame call. Has no effect
// beyond that frame; the session stays in its current mode.
func (s *RenderSession) Trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggered = true
}

// SetPlaying switches between continuous and on-demand rendering
func (s *RenderSession) SetPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = playing
}

// Playing reports whether the session renders continuously
func (s *RenderSession) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Frame renders one frame if the session is playing or a render was
// triggered. Returns the render stats and whether a render happened.
func (s *RenderSession) Frame(width, height int) (RenderStats, bool, error) {
	s.mu.Lock()
	shouldRender := s.playing || s.triggered
	s.triggered = false
	s.mu.Unlock()

	if !shouldRender {
		return RenderStats{}, false, nil
	}

	stats, err := s.raytracer.Render(width, height)
	if err != nil {
		return RenderStats{}, false, err
	}
	return stats, true, nil
}
