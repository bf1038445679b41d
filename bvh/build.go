package bvh

import (
	"sync/atomic"

	"github.com/arl/assertgo"
	"github.com/arl/go-suptracer/trace"
)

// buildNode is the intermediate, pointer-based tree produced by the
// recursive builder before it is flattened into a CompactBVH. It exists
// only during construction.
type buildNode struct {
	bb    trace.AABB
	leaf  bool
	start uint32 // leaf: first triangle index
	count uint32 // leaf: triangle count
	axis  uint8  // interior: split axis
	left  *buildNode
	right *buildNode
}

// Build constructs a binned-SAH BVH over tris. It reorders tris in place so
// that every leaf's triangles occupy a contiguous range, and returns the
// resulting node array alongside the reordered slice; callers must use the
// returned slice, not the one they passed in.
//
// Grounded on original_source/src/bvh.rs's construct/compactify pair: a
// pointer-tree build pass followed by a depth-first flatten, generalized
// here to fork the two children of a split across goroutines.
func Build(tris []trace.Triangle, cfg Config) (*CompactBVH, []trace.Triangle) {
	if len(tris) == 0 {
		return &CompactBVH{Nodes: []CompactNode{{BB: trace.EmptyAABB(), Offset: 0, Payload: 0}}}, tris
	}

	bb := trace.SliceBounds(tris)

	var nodeCount uint64
	root := buildSubtree(tris, 0, bb, cfg, 0, &nodeCount)

	nodes := make([]CompactNode, nodeCount)
	var next uint32
	compactify(nodes, &next, root)
	assert.True(uint64(next) == nodeCount, "bvh: compactify emitted %d nodes, builder counted %d", next, nodeCount)

	return &CompactBVH{Nodes: nodes}, tris
}

func buildSubtree(tris []trace.Triangle, globalOffset uint32, bb trace.AABB, cfg Config, depth uint32, nodeCount *uint64) *buildNode {
	assert.True(depth <= cfg.MaxDepth, "bvh: max recursion depth %d exceeded at depth %d", cfg.MaxDepth, depth)
	atomic.AddUint64(nodeCount, 1)

	if len(tris) == 1 {
		return &buildNode{bb: bb, leaf: true, start: globalOffset, count: 1}
	}

	cbb := centroidBounds(tris)
	axis := longestAxis(cbb)
	lo, hi := cbb.Min[axis], cbb.Max[axis]

	// All centroids coincide on every axis: no split can separate these
	// triangles, so stop here regardless of count.
	if lo == hi {
		return &buildNode{bb: bb, leaf: true, start: globalOffset, count: uint32(len(tris))}
	}

	buckets := cfg.BucketCount
	if buckets < 2 {
		buckets = 2
	}

	counts := make([]int32, buckets)
	bucketBB := make([]trace.AABB, buckets)
	for i := range bucketBB {
		bucketBB[i] = trace.EmptyAABB()
	}
	for _, t := range tris {
		b := bucketIndex(t.Centroid()[axis], lo, hi, buckets)
		counts[b]++
		bucketBB[b] = bucketBB[b].Union(trace.TriangleBounds(t))
	}

	// prefix[i] = buckets[0..i] inclusive; suffix[i] = buckets[i..buckets) inclusive.
	prefixCount := make([]int32, buckets)
	prefixBB := make([]trace.AABB, buckets)
	running := trace.EmptyAABB()
	var runningCount int32
	for i := uint32(0); i < buckets; i++ {
		runningCount += counts[i]
		running = running.Union(bucketBB[i])
		prefixCount[i] = runningCount
		prefixBB[i] = running
	}

	suffixCount := make([]int32, buckets)
	suffixBB := make([]trace.AABB, buckets)
	running = trace.EmptyAABB()
	runningCount = 0
	for i := int(buckets) - 1; i >= 0; i-- {
		runningCount += counts[i]
		running = running.Union(bucketBB[i])
		suffixCount[i] = runningCount
		suffixBB[i] = running
	}

	parentArea := bb.SurfaceArea()
	bestCost := float32(len(tris)) // cost of making this node a leaf
	bestSplit := -1

	for i := 1; i < int(buckets); i++ {
		lCount, lBB := prefixCount[i-1], prefixBB[i-1]
		rCount, rBB := suffixCount[i], suffixBB[i]
		if lCount == 0 || rCount == 0 {
			continue
		}
		cost := cfg.TraversalCost
		if parentArea > 0 {
			cost += (float32(lCount)*lBB.SurfaceArea() + float32(rCount)*rBB.SurfaceArea()) / parentArea
		}
		if cost < bestCost {
			bestCost = cost
			bestSplit = i
		}
	}

	if bestSplit < 0 {
		return &buildNode{bb: bb, leaf: true, start: globalOffset, count: uint32(len(tris))}
	}

	mid := partitionByBucket(tris, axis, lo, hi, buckets, bestSplit)
	if mid == 0 || mid == len(tris) {
		// Every triangle landed on one side despite distinct bucket
		// indices existing (possible with extreme centroid skew); fall
		// back to a leaf rather than recurse on an empty child.
		return &buildNode{bb: bb, leaf: true, start: globalOffset, count: uint32(len(tris))}
	}

	leftTris, rightTris := tris[:mid], tris[mid:]
	leftBB := trace.SliceBounds(leftTris)
	rightBB := trace.SliceBounds(rightTris)

	var left, right *buildNode
	if len(tris) >= parallelThreshold {
		ParallelJoin(
			func() { left = buildSubtree(leftTris, globalOffset, leftBB, cfg, depth+1, nodeCount) },
			func() { right = buildSubtree(rightTris, globalOffset+uint32(mid), rightBB, cfg, depth+1, nodeCount) },
		)
	} else {
		left = buildSubtree(leftTris, globalOffset, leftBB, cfg, depth+1, nodeCount)
		right = buildSubtree(rightTris, globalOffset+uint32(mid), rightBB, cfg, depth+1, nodeCount)
	}

	return &buildNode{bb: bb, leaf: false, axis: uint8(axis), left: left, right: right}
}

// compactify walks n depth-first and appends it to nodes, guaranteeing the
// left child of any interior node lands at its own index+1.
func compactify(nodes []CompactNode, next *uint32, n *buildNode) uint32 {
	idx := *next
	*next++

	if n.leaf {
		assert.True(n.count&leafOrNodeMask == 0, "bvh: leaf triangle count %d collides with the interior-node tag bit", n.count)
		nodes[idx] = CompactNode{BB: n.bb, Offset: n.start, Payload: n.count}
		return idx
	}

	leftIdx := compactify(nodes, next, n.left)
	assert.True(leftIdx == idx+1, "bvh: left child must immediately follow its parent in the node array")
	rightIdx := compactify(nodes, next, n.right)

	nodes[idx] = CompactNode{
		BB:      n.bb,
		Offset:  rightIdx,
		Payload: leafOrNodeMask | uint32(n.axis),
	}
	return idx
}

func centroidBounds(tris []trace.Triangle) trace.AABB {
	bb := trace.EmptyAABB()
	for _, t := range tris {
		c := t.Centroid()
		bb = bb.Union(trace.AABB{Min: c, Max: c})
	}
	return bb
}

func longestAxis(bb trace.AABB) int {
	d := [3]float32{bb.Max[0] - bb.Min[0], bb.Max[1] - bb.Min[1], bb.Max[2] - bb.Min[2]}
	axis := 0
	if d[1] > d[axis] {
		axis = 1
	}
	if d[2] > d[axis] {
		axis = 2
	}
	return axis
}

func bucketIndex(c, lo, hi float32, buckets uint32) uint32 {
	b := int32(float32(buckets) * (c - lo) / (hi - lo))
	if b < 0 {
		b = 0
	}
	if b >= int32(buckets) {
		b = int32(buckets) - 1
	}
	return uint32(b)
}

// partitionByBucket reorders tris in place so every triangle whose centroid
// bucket index is below splitIdx comes first, and returns the count of
// such triangles. Lomuto-style single pass, mirroring the in-place
// partitioning std::slice::partition_point-driven reorder in
// original_source/src/bvh.rs's construct.
func partitionByBucket(tris []trace.Triangle, axis int, lo, hi float32, buckets uint32, splitIdx int) int {
	write := 0
	for read := 0; read < len(tris); read++ {
		b := bucketIndex(tris[read].Centroid()[axis], lo, hi, buckets)
		if int(b) < splitIdx {
			tris[write], tris[read] = tris[read], tris[write]
			write++
		}
	}
	return write
}
