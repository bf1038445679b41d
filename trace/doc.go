// Package trace implements the primitive geometric types shared by mesh
// ingestion, BVH construction and ray traversal: triangles, rays, hits and
// axis-aligned bounding boxes, plus the watertight ray/triangle test.
//
// Nothing in this package allocates an acceleration structure; it only
// knows how to bound and intersect individual primitives. See package bvh
// for the spatial index built on top of it.
package trace
