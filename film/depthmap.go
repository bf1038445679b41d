package film

import (
	"image"
	"image/color"
	"math"
)

// Depthmap renders a Frame of hit distances as grayscale, with rays that
// missed everything (distance +Inf) drawn as a distinct blue background.
//
// Grounded on src/film.rs's Depthmap::to_bmp: min/max taken over finite
// depths only, inverse-lerp into [0, 255], infinite depth given a fixed
// background color instead of participating in the lerp.
type Depthmap struct {
	*Frame[float32]
}

// NewDepthmap wraps frame as a Depthmap.
func NewDepthmap(frame *Frame[float32]) Depthmap {
	return Depthmap{frame}
}

// Image renders the depthmap into an image.Image suitable for BMP
// encoding.
func (d Depthmap) Image() image.Image {
	minDepth := float32(math.Inf(1))
	maxDepth := float32(math.Inf(-1))
	for _, depth := range d.Pixels() {
		if math.IsInf(float64(depth), 0) {
			continue
		}
		if depth < minDepth {
			minDepth = depth
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			depth := d.At(x, y)
			var px color.RGBA
			if math.IsInf(float64(depth), 1) {
				px = color.RGBA{R: 0, G: 0, B: 255, A: 255}
			} else {
				intensity := invLerp(depth, minDepth, maxDepth)
				s := uint8(math.Round(float64(1-intensity) * 255))
				px = color.RGBA{R: s, G: s, B: s, A: 255}
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// invLerp returns the t in [0, 1] such that x = (1-t)*x0 + t*x1. Returns 0
// when x0 == x1 rather than panicking, since a single-depth frame (e.g. one
// triangle filling the whole image) is a valid render, not a bug.
func invLerp(x, x0, x1 float32) float32 {
	if x1 == x0 {
		return 0
	}
	return (x - x0) / (x1 - x0)
}
