package scene

import (
	"sync/atomic"

	"github.com/arl/go-suptracer/bvh"
	"github.com/arl/go-suptracer/trace"
)

// Scene holds a mesh's triangles in BVH leaf order, its BVH, and a running
// count of rays cast against it.
//
// Grounded on src/scene.rs's Scene: an atomic ray counter plus an intersect
// method that delegates to the BVH traversal.
type Scene struct {
	Tris []trace.Triangle
	BVH  *bvh.CompactBVH

	rays uint64
}

// Load reads an OBJ file at path, normalizes its placement, and builds a
// BVH over it using cfg.
func Load(path string, cfg bvh.Config) (*Scene, error) {
	tris, err := loadOBJ(path)
	if err != nil {
		return nil, err
	}
	normalize(tris)
	return FromTriangles(tris, cfg), nil
}

// FromTriangles builds a Scene directly from an already-placed triangle
// slice, bypassing OBJ loading. Used by tests and by callers that construct
// geometry procedurally.
func FromTriangles(tris []trace.Triangle, cfg bvh.Config) *Scene {
	tree, reordered := bvh.Build(tris, cfg)
	return &Scene{Tris: reordered, BVH: tree}
}

// Intersect finds the closest triangle hit along ray, counting the query
// against the scene's ray counter regardless of outcome.
func (s *Scene) Intersect(ray *trace.Ray) trace.Hit {
	atomic.AddUint64(&s.rays, 1)
	return bvh.Traverse(s.BVH, s.Tris, ray)
}

// IntersectCounting behaves like Intersect but also returns the number of
// BVH nodes visited while resolving ray, for heatmap rendering.
func (s *Scene) IntersectCounting(ray *trace.Ray) (trace.Hit, uint32) {
	atomic.AddUint64(&s.rays, 1)
	return bvh.TraverseCounting(s.BVH, s.Tris, ray)
}

// RaysCast returns the number of rays intersected against this scene so
// far. Safe to call concurrently with Intersect.
func (s *Scene) RaysCast() uint64 {
	return atomic.LoadUint64(&s.rays)
}
