package trace

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
	"github.com/stretchr/testify/assert"
)

func TestEmptyAABBSurfaceAreaIsZero(t *testing.T) {
	bb := EmptyAABB()
	assert.Equal(t, float32(0), bb.SurfaceArea())
}

func TestUnionWithEmptyYieldsOtherBox(t *testing.T) {
	bb := AABB{Min: d3.Vec3{-1, -1, -1}, Max: d3.Vec3{1, 1, 1}}
	union := EmptyAABB().Union(bb)
	assert.Equal(t, bb.Min, union.Min)
	assert.Equal(t, bb.Max, union.Max)
}

func TestSurfaceAreaMonotoneUnderUnion(t *testing.T) {
	a := AABB{Min: d3.Vec3{0, 0, 0}, Max: d3.Vec3{1, 1, 1}}
	b := AABB{Min: d3.Vec3{2, 2, 2}, Max: d3.Vec3{3, 3, 3}}
	union := a.Union(b)

	areaA, areaB := a.SurfaceArea(), b.SurfaceArea()
	areaUnion := union.SurfaceArea()

	assert.GreaterOrEqual(t, areaUnion, areaA)
	assert.GreaterOrEqual(t, areaUnion, areaB)
}

func TestSlabIntersectGrazingRayDoesNotPanic(t *testing.T) {
	// S5: a ray parallel to the z axis, grazing the box exactly on its
	// top face. Under IEEE 754 the ±Inf*0 terms this produces must not
	// turn into a NaN that silently reports a hit or a crash.
	bb := AABB{Min: d3.Vec3{-1, -1, -5}, Max: d3.Vec3{1, 1, -3}}
	o := d3.Vec3{0, 1, 0}
	d := d3.Vec3{0, 0, -1}
	rd := NewRaySlabData(d)

	assert.NotPanics(t, func() {
		bb.Intersect(o, rd, float32(1e30))
	})
}

func TestSlabIntersectHitsBoxInFront(t *testing.T) {
	bb := AABB{Min: d3.Vec3{-1, -1, -6}, Max: d3.Vec3{1, 1, -4}}
	o := d3.Vec3{0, 0, 0}
	d := d3.Vec3{0, 0, -1}
	rd := NewRaySlabData(d)

	assert.True(t, bb.Intersect(o, rd, float32(1e30)))
}

func TestSlabIntersectMissesBoxBehindRay(t *testing.T) {
	bb := AABB{Min: d3.Vec3{-1, -1, 4}, Max: d3.Vec3{1, 1, 6}}
	o := d3.Vec3{0, 0, 0}
	d := d3.Vec3{0, 0, -1}
	rd := NewRaySlabData(d)

	assert.False(t, bb.Intersect(o, rd, float32(1e30)))
}

func TestTriangleBoundsAndSliceBounds(t *testing.T) {
	tri := Triangle{A: d3.Vec3{-1, 0, -5}, B: d3.Vec3{1, 0, -5}, C: d3.Vec3{0, 1, -5}}
	bb := TriangleBounds(tri)
	assert.Equal(t, float32(-1), bb.Min[0])
	assert.Equal(t, float32(1), bb.Max[0])
	assert.Equal(t, float32(0), bb.Min[1])
	assert.Equal(t, float32(1), bb.Max[1])

	all := SliceBounds([]Triangle{tri})
	assert.Equal(t, bb, all)

	assert.Equal(t, EmptyAABB(), SliceBounds(nil))
}
