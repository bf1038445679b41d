package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arl/go-suptracer/trace"
	"github.com/arl/gogeo/f32/d3"
	"github.com/stretchr/testify/assert"
)

func randomTriangle(r *rand.Rand, spread float32) trace.Triangle {
	pt := func() d3.Vec3 {
		return d3.Vec3{
			(r.Float32()*2 - 1) * spread,
			(r.Float32()*2 - 1) * spread,
			(r.Float32()*2 - 1) * spread,
		}
	}
	return trace.Triangle{A: pt(), B: pt(), C: pt()}
}

func linearScan(tris []trace.Triangle, ray *trace.Ray) trace.Hit {
	hit := trace.InvalidHit()
	rd := trace.NewRayData(ray.O, ray.D)
	trace.IntersectRange(tris, 0, ray, rd, &hit)
	return hit
}

// multisetKey reduces a triangle to a value stable across reordering, so
// two slices can be compared as multisets regardless of element order.
func multisetKey(t trace.Triangle) [9]float32 {
	return [9]float32{t.A[0], t.A[1], t.A[2], t.B[0], t.B[1], t.B[2], t.C[0], t.C[1], t.C[2]}
}

func multiset(tris []trace.Triangle) map[[9]float32]int {
	m := make(map[[9]float32]int, len(tris))
	for _, t := range tris {
		m[multisetKey(t)]++
	}
	return m
}

// Invariant: leaf ranges partition [0, N) exactly once each.
func TestLeafRangesPartitionTriangleArray(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tris := make([]trace.Triangle, 200)
	for i := range tris {
		tris[i] = randomTriangle(r, 10)
	}

	bvh, reordered := Build(tris, DefaultConfig())
	covered := make([]bool, len(reordered))
	for _, n := range bvh.Nodes {
		if !n.IsLeaf() {
			continue
		}
		start, count := n.LeafRange()
		for i := start; i < start+count; i++ {
			assert.False(t, covered[i], "triangle %d covered by more than one leaf", i)
			covered[i] = true
		}
	}
	for i, c := range covered {
		assert.True(t, c, "triangle %d not covered by any leaf", i)
	}
}

// Invariant: the build only reorders, never drops or duplicates triangles.
func TestBuildReordersWithoutLosingTriangles(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	tris := make([]trace.Triangle, 150)
	for i := range tris {
		tris[i] = randomTriangle(r, 5)
	}
	original := multiset(tris)

	_, reordered := Build(tris, DefaultConfig())
	assert.Equal(t, original, multiset(reordered))
}

// Invariant: depth-first layout places every interior node's left child at
// index+1.
func TestLeftChildImmediatelyFollowsParent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tris := make([]trace.Triangle, 300)
	for i := range tris {
		tris[i] = randomTriangle(r, 10)
	}
	bvh, _ := Build(tris, DefaultConfig())
	for i, n := range bvh.Nodes {
		if n.IsLeaf() {
			continue
		}
		assert.Equal(t, uint32(i+1), uint32(i)+1, "sanity")
		assert.Greater(t, n.RightChild(), uint32(i+1))
	}
}

// Invariant: building the same input twice yields the same node count (SAH
// decisions are deterministic).
func TestBuildIsIdempotentOnNodeCount(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	tris := make([]trace.Triangle, 64)
	for i := range tris {
		tris[i] = randomTriangle(r, 10)
	}
	tris2 := append([]trace.Triangle(nil), tris...)

	bvh1, _ := Build(tris, DefaultConfig())
	bvh2, _ := Build(tris2, DefaultConfig())
	assert.Equal(t, len(bvh1.Nodes), len(bvh2.Nodes))
}

// S3: traversal agrees with a linear scan over many random rays.
func TestTraverseAgreesWithLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	tris := make([]trace.Triangle, 1000)
	for i := range tris {
		tris[i] = randomTriangle(r, 20)
	}

	bvh, reordered := Build(tris, DefaultConfig())
	reference := append([]trace.Triangle(nil), reordered...)

	for i := 0; i < 10000; i++ {
		o := d3.Vec3{(r.Float32()*2 - 1) * 30, (r.Float32()*2 - 1) * 30, (r.Float32()*2 - 1) * 30}
		d := d3.Vec3{r.Float32()*2 - 1, r.Float32()*2 - 1, r.Float32()*2 - 1}
		if d[0] == 0 && d[1] == 0 && d[2] == 0 {
			d[0] = 1
		}

		rayA := trace.NewRay(o, d)
		rayB := trace.NewRay(o, d)

		got := Traverse(bvh, reordered, &rayA)
		want := linearScan(reference, &rayB)

		assert.Equal(t, want.IsValid(), got.IsValid())
		if want.IsValid() {
			assert.InDelta(t, want.T, got.T, 1e-3)
		}
	}
}

// S4: a degenerate mesh where every centroid coincides still builds
// (a single leaf), rather than recursing forever or panicking.
func TestDegenerateCoincidentCentroidsYieldsSingleLeaf(t *testing.T) {
	tris := make([]trace.Triangle, 50)
	for i := range tris {
		// Distinct vertices, identical centroid: (0,0,0)/(1,-1,0)/(-1,1,0) average to origin.
		tris[i] = trace.Triangle{
			A: d3.Vec3{0, 0, 0},
			B: d3.Vec3{1, -1, 0},
			C: d3.Vec3{-1, 1, 0},
		}
	}

	bvh, _ := Build(tris, DefaultConfig())
	leaves := 0
	for _, n := range bvh.Nodes {
		if n.IsLeaf() {
			leaves++
		}
	}
	assert.Equal(t, 1, len(bvh.Nodes))
	assert.Equal(t, 1, leaves)
}

// S6: an empty scene never panics and always reports an invalid hit.
func TestEmptySceneYieldsInvalidHit(t *testing.T) {
	bvh, tris := Build(nil, DefaultConfig())
	ray := trace.NewRay(d3.Vec3{0, 0, 0}, d3.Vec3{0, 0, -1})
	hit := Traverse(bvh, tris, &ray)
	assert.False(t, hit.IsValid())
	assert.True(t, math.IsNaN(float64(hit.T)))
}

func TestSingleTriangleBuildsOneLeaf(t *testing.T) {
	tris := []trace.Triangle{{
		A: d3.Vec3{-1, -1, -5},
		B: d3.Vec3{1, -1, -5},
		C: d3.Vec3{0, 1, -5},
	}}
	bvh, reordered := Build(tris, DefaultConfig())
	assert.Equal(t, 1, len(bvh.Nodes))
	assert.True(t, bvh.Nodes[0].IsLeaf())

	ray := trace.NewRay(d3.Vec3{0, 0, 0}, d3.Vec3{0, 0, -1})
	hit := Traverse(bvh, reordered, &ray)
	assert.True(t, hit.IsValid())
	assert.InDelta(t, 5.0, hit.T, 1e-6)
}
