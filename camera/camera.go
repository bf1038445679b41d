// Package camera turns pixel coordinates into primary rays.
package camera

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/arl/go-suptracer/trace"
)

// Pinhole is a camera at Origin looking down -z, producing one primary ray
// per pixel of a Width x Height image.
//
// Grounded on src/main.rs's primary_ray: normalized device coordinates in
// [-1, 1], y flipped so row 0 is the top of the image, direction fixed at
// z=-1 before normalization. Per spec.md's open question on pixel
// indexing, this repo addresses pixels row-major (row*Width+col), not the
// original's unexplained i/height, i%height split.
type Pinhole struct {
	Origin        d3.Vec3
	Width, Height int
}

// NewPinhole returns a Pinhole camera at the origin for a width x height
// image.
func NewPinhole(width, height int) Pinhole {
	return Pinhole{Origin: d3.Vec3{0, 0, 0}, Width: width, Height: height}
}

// PrimaryRay returns the ray through the center of pixel (x, y), x in
// [0, Width) and y in [0, Height).
func (c Pinhole) PrimaryRay(x, y int) trace.Ray {
	normX := (float32(x) + 0.5) / float32(c.Width)
	normY := (float32(y) + 0.5) / float32(c.Height)
	camX := 2*normX - 1
	camY := 1 - 2*normY

	aspect := float32(c.Width) / float32(c.Height)
	if aspect > 1 {
		camX *= aspect
	} else if aspect < 1 {
		camY /= aspect
	}

	d := normalize(d3.Vec3{camX, camY, -1})
	return trace.NewRay(c.Origin, d)
}

func normalize(v d3.Vec3) d3.Vec3 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return d3.Vec3{v[0] / l, v[1] / l, v[2] / l}
}
