package renderer

import (
	"image"
	"math"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
)

// PackColor averages an accumulated pixel color, applies gamma correction and
// packs it into a 32-bit value with byte order (alpha<<24)|(blue<<16)|(green<<8)|red.
// Channels are clamped to [0, 0.999] before scaling so no component can
// overflow into the next byte.
func PackColor(accum core.Vec3, samplesPerPixel int, gamma float64) uint32 {
	scale := 1.0 / float64(samplesPerPixel)
	rgb := accum.Multiply(scale).Clamp(0.0, 0.999)

	invGamma := 1.0 / gamma
	r := uint32(math.Pow(rgb.X, invGamma) * 256)
	g := uint32(math.Pow(rgb.Y, invGamma) * 256)
	b := uint32(math.Pow(rgb.Z, invGamma) * 256)

	return (255 << 24) | (b << 16) | (g << 8) | r
}

// BufferToImage converts a packed pixel buffer to an image.RGBA.
// The packed layout is RGBA in little-endian byte order, so each channel maps
// directly onto the image's Pix slice.
func BufferToImage(buffer []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, packed := range buffer {
		img.Pix[4*i+0] = uint8(packed)
		img.Pix[4*i+1] = uint8(packed >> 8)
		img.Pix[4*i+2] = uint8(packed >> 16)
		img.Pix[4*i+3] = uint8(packed >> 24)
	}
	return img
}
