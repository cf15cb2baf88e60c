package renderer

import "time"

// RenderStats contains statistics about a completed frame
type RenderStats struct {
	Width           int           // Frame width in pixels
	Height          int           // Frame height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Configured samples per pixel
	Workers         int           // Number of workers used
	RenderTime      time.Duration // Wall time for the frame
}

// FPS returns the effective frames per second for this frame's render time
func (s RenderStats) FPS() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return 1.0 / s.RenderTime.Seconds()
}
