package trace

import (
	"github.com/arl/math32"

	"github.com/arl/gogeo/f32/d3"
)

// Ray is a half-line from O in direction D. TMax is the current upper bound
// on valid hit distances; it is monotonically non-increasing over the
// course of a single traversal and must never be shared between concurrently
// traced rays.
type Ray struct {
	O, D d3.Vec3
	TMax float32
}

// NewRay returns a ray with TMax initialized to +Inf. D need not be unit
// length.
func NewRay(o, d d3.Vec3) Ray {
	return Ray{O: o, D: d, TMax: math32.Inf(1)}
}
