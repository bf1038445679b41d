package trace

import "github.com/arl/gogeo/f32/d3"

// Triangle is a mesh primitive: three vertex positions plus an opaque
// payload (e.g. a material or color index) that the builder and traversal
// carry through unchanged while reordering triangles for the BVH.
type Triangle struct {
	A, B, C d3.Vec3
	Payload uint32
}

// Centroid returns the geometric average of the triangle's three vertices,
// used to bucket the triangle during BVH construction without splitting it.
func (t Triangle) Centroid() d3.Vec3 {
	return d3.Vec3{
		(t.A[0] + t.B[0] + t.C[0]) / 3,
		(t.A[1] + t.B[1] + t.C[1]) / 3,
		(t.A[2] + t.B[2] + t.C[2]) / 3,
	}
}
