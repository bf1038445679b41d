package trace

import (
	"fmt"

	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// AABB is an axis-aligned bounding box, represented as a pair of extremal
// points. The canonical empty box has Min set to +Inf and Max to -Inf on
// every axis; it is the identity element of Union.
type AABB struct {
	Min, Max d3.Vec3
}

// EmptyAABB returns the canonical empty bounding box.
func EmptyAABB() AABB {
	return AABB{
		Min: d3.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: d3.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
}

// TriangleBounds returns the bounding box of a single triangle.
func TriangleBounds(t Triangle) AABB {
	bb := EmptyAABB()
	bb.extendPoint(t.A)
	bb.extendPoint(t.B)
	bb.extendPoint(t.C)
	return bb
}

// SliceBounds returns the bounding box enclosing every triangle in tris. An
// empty slice yields the empty box.
func SliceBounds(tris []Triangle) AABB {
	bb := EmptyAABB()
	for _, t := range tris {
		bb.extendPoint(t.A)
		bb.extendPoint(t.B)
		bb.extendPoint(t.C)
	}
	return bb
}

// fmin32/fmax32 are NaN-tolerant: if exactly one argument is NaN, the other
// is returned, matching Rust's f32::min/max (and C's fmin/fmax) rather than
// Go's math.Min/Max, whose NaN propagation would poison an accumulating
// bounding box the first time it saw a degenerate vertex.
func fmin32(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func fmax32(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func (bb *AABB) extendPoint(p d3.Vec3) {
	bb.Min[0] = fmin32(bb.Min[0], p[0])
	bb.Min[1] = fmin32(bb.Min[1], p[1])
	bb.Min[2] = fmin32(bb.Min[2], p[2])
	bb.Max[0] = fmax32(bb.Max[0], p[0])
	bb.Max[1] = fmax32(bb.Max[1], p[1])
	bb.Max[2] = fmax32(bb.Max[2], p[2])
}

// Union returns the smallest box enclosing both bb and other.
func (bb AABB) Union(other AABB) AABB {
	return AABB{
		Min: d3.Vec3{
			fmin32(bb.Min[0], other.Min[0]),
			fmin32(bb.Min[1], other.Min[1]),
			fmin32(bb.Min[2], other.Min[2]),
		},
		Max: d3.Vec3{
			fmax32(bb.Max[0], other.Max[0]),
			fmax32(bb.Max[1], other.Max[1]),
			fmax32(bb.Max[2], other.Max[2]),
		},
	}
}

// WithMin returns a copy of bb with its minimum replaced on the given axis.
func (bb AABB) WithMin(axis int, v float32) AABB {
	bb.Min = d3.Vec3{bb.Min[0], bb.Min[1], bb.Min[2]}
	bb.Min[axis] = v
	return bb
}

// WithMax returns a copy of bb with its maximum replaced on the given axis.
func (bb AABB) WithMax(axis int, v float32) AABB {
	bb.Max = d3.Vec3{bb.Max[0], bb.Max[1], bb.Max[2]}
	bb.Max[axis] = v
	return bb
}

// SurfaceArea returns the total surface area of bb, or 0 if bb is empty.
func (bb AABB) SurfaceArea() float32 {
	dx := bb.Max[0] - bb.Min[0]
	dy := bb.Max[1] - bb.Min[1]
	dz := bb.Max[2] - bb.Min[2]
	if dx < 0 || dy < 0 || dz < 0 {
		return 0
	}
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// RaySlabData holds the ray quantities the AABB slab test needs precomputed
// once and reused across every node tested during a traversal.
type RaySlabData struct {
	Sign   [3]int
	InvDir d3.Vec3
}

// NewRaySlabData precomputes the per-axis sign and inverse direction of d.
func NewRaySlabData(d d3.Vec3) RaySlabData {
	var rd RaySlabData
	for k := 0; k < 3; k++ {
		if d[k] < 0 {
			rd.Sign[k] = 1
		}
	}
	rd.InvDir = d3.Vec3{1 / d[0], 1 / d[1], 1 / d[2]}
	return rd
}

// Intersect reports whether the ray (o, rd) intersects bb within (0, tMax),
// using the slab test of Williams et al., "An efficient and robust
// ray-box intersection algorithm" (2005). Each axis narrows [tmin, tmax] to
// the intersection of the running interval and that axis's slab interval
// (tmin = max(tmin, axismin), tmax = min(tmax, axismax)); fmin32/fmax32
// discard NaN symmetrically so this holds for axis-aligned rays too.
func (bb AABB) Intersect(o d3.Vec3, rd RaySlabData, tMax float32) bool {
	p := [2]d3.Vec3{bb.Min, bb.Max}

	tmin := (p[rd.Sign[0]][0] - o[0]) * rd.InvDir[0]
	tmax := (p[1-rd.Sign[0]][0] - o[0]) * rd.InvDir[0]

	tymin := (p[rd.Sign[1]][1] - o[1]) * rd.InvDir[1]
	tymax := (p[1-rd.Sign[1]][1] - o[1]) * rd.InvDir[1]
	if tmin > tymax || tymin > tmax {
		return false
	}
	tmin = fmax32(tmin, tymin)
	tmax = fmin32(tmax, tymax)

	tzmin := (p[rd.Sign[2]][2] - o[2]) * rd.InvDir[2]
	tzmax := (p[1-rd.Sign[2]][2] - o[2]) * rd.InvDir[2]
	if tmin > tzmax || tzmin > tmax {
		return false
	}
	tmin = fmax32(tmin, tzmin)
	tmax = fmin32(tmax, tzmax)

	return tmin < tMax && tmax > 0
}

func (bb AABB) String() string {
	return fmt.Sprintf("[%v, %v, %v]..[%v, %v, %v]",
		bb.Min[0], bb.Min[1], bb.Min[2], bb.Max[0], bb.Max[1], bb.Max[2])
}
