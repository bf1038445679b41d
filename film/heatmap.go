package film

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Heatmap renders a Frame of per-pixel traversal-step counts as a red
// channel, clamped to the 5th/95th percentile of the frame so a handful of
// pathological rays can't wash out the whole image.
//
// Grounded on src/film.rs's Heatmap::to_bmp.
type Heatmap struct {
	*Frame[uint32]
}

// NewHeatmap wraps frame as a Heatmap.
func NewHeatmap(frame *Frame[uint32]) Heatmap {
	return Heatmap{frame}
}

// Image renders the heatmap into an image.Image suitable for BMP encoding.
func (h Heatmap) Image() image.Image {
	sorted := append([]uint32(nil), h.Pixels()...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var pct05, pct95 uint32
	if len(sorted) > 0 {
		pct05 = sorted[len(sorted)*5/100]
		pct95 = sorted[len(sorted)*95/100]
	}

	img := image.NewRGBA(image.Rect(0, 0, h.Width, h.Height))
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			heat := h.At(x, y)
			clamped := clampU32(heat, pct05, pct95)
			intensity := float32(0)
			if pct95 != pct05 {
				intensity = float32(clamped-pct05) / float32(pct95-pct05)
			}
			s := uint8(math.Round(float64(intensity) * 255))
			img.SetRGBA(x, y, color.RGBA{R: s, G: 0, B: 0, A: 255})
		}
	}
	return img
}

func clampU32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
