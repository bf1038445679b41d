package trace

// IntersectRange tests every triangle in tris against the ray described by
// (ray, rd), shrinking ray.TMax and overwriting hit whenever a closer
// intersection is found. offset is the absolute index of tris[0] in the
// scene's full reordered triangle array, so hit.TriID is an index into that
// full array rather than into tris.
//
// Safe to call concurrently for independent rays; ray and hit must not be
// shared across goroutines within a single traversal.
func IntersectRange(tris []Triangle, offset uint32, ray *Ray, rd RayData, hit *Hit) {
	for i, tri := range tris {
		isect, ok := Intersect(tri, rd)
		if !ok {
			continue
		}
		if isect.T < ray.TMax {
			ray.TMax = isect.T
			hit.replace(offset+uint32(i), isect)
		}
	}
}
