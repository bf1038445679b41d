package trace

import "github.com/arl/math32"

// InvalidTriID marks a Hit that did not intersect any triangle.
const InvalidTriID = ^uint32(0)

// Hit is the result of tracing a ray through a scene: the index of the
// closest intersected triangle and its barycentric coordinates. An invalid
// Hit has TriID == InvalidTriID and every float set to NaN; a valid Hit has
// all four floats finite and U+V+W ≈ 1.
type Hit struct {
	TriID   uint32
	T, U, V, W float32
}

// InvalidHit returns the canonical "nothing hit" result.
func InvalidHit() Hit {
	nan := math32.NaN()
	return Hit{TriID: InvalidTriID, T: nan, U: nan, V: nan, W: nan}
}

// IsValid reports whether h represents an actual intersection.
func (h Hit) IsValid() bool {
	return h.TriID != InvalidTriID
}

// replace overwrites h with a new, closer intersection.
func (h *Hit) replace(triID uint32, i Intersection) {
	h.TriID = triID
	h.T = i.T
	h.U = i.U
	h.V = i.V
	h.W = i.W
}
