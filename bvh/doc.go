// Package bvh builds and queries a binned-SAH bounding volume hierarchy
// over a triangle array.
//
// Construction (Build) recursively partitions triangles by a binned
// Surface Area Heuristic, forking the two child subtrees onto the default
// goroutine scheduler, then flattens the resulting tree into a compact,
// depth-first node array (CompactBVH) with an implicit left-child index.
// Traversal (Traverse) walks that array with an explicit stack, ordering
// child descent by ray direction so the near child is always visited
// first.
package bvh
