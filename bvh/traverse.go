package bvh

import (
	"github.com/arl/go-suptracer/trace"
)

// maxStackDepth bounds the explicit traversal stack. Traversing a tree whose
// deepest leaf is at depth D (root at depth 0) needs at most D+1 entries, so
// this stack holds trees of depth up to 63.
const maxStackDepth = 64

// Traverse walks bvh looking for the closest triangle in tris hit by ray,
// updating ray.TMax as closer hits are found and returning the best Hit
// (or an invalid Hit if nothing was struck).
//
// Grounded on original_source/src/bvh.rs's traverse: an explicit stack
// instead of recursion, slab rejection at every interior node, and
// near-child-first descent driven by the ray's sign along the node's
// split axis so a hit found on the near side can cull the far side via
// ray.TMax before it is ever visited.
func Traverse(bvh *CompactBVH, tris []trace.Triangle, ray *trace.Ray) trace.Hit {
	hit, _ := TraverseCounting(bvh, tris, ray)
	return hit
}

// TraverseCounting behaves exactly like Traverse, additionally returning
// the number of nodes visited (tested against the ray's slab, whether or
// not they were entered). film.Heatmap uses this count as its per-pixel
// heat value; Traverse exists as the common case that doesn't need it.
func TraverseCounting(bvh *CompactBVH, tris []trace.Triangle, ray *trace.Ray) (trace.Hit, uint32) {
	hit := trace.InvalidHit()
	if len(bvh.Nodes) == 0 {
		return hit, 0
	}

	slab := trace.NewRaySlabData(ray.D)
	rd := trace.NewRayData(ray.O, ray.D)

	var stack [maxStackDepth]uint32
	sp := 0
	stack[sp] = 0
	sp++

	var steps uint32

	for sp > 0 {
		sp--
		idx := stack[sp]
		node := bvh.Nodes[idx]
		steps++

		if !node.BB.Intersect(ray.O, slab, ray.TMax) {
			continue
		}

		if node.IsLeaf() {
			start, count := node.LeafRange()
			trace.IntersectRange(tris[start:start+count], start, ray, rd, &hit)
			continue
		}

		left := idx + 1
		right := node.RightChild()

		if slab.Sign[node.Axis()] == 1 {
			stack[sp] = left
			sp++
			stack[sp] = right
			sp++
		} else {
			stack[sp] = right
			sp++
			stack[sp] = left
			sp++
		}
	}

	return hit, steps
}
