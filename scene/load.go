package scene

import (
	"github.com/arl/gobj"
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/go-suptracer/trace"
)

// loadOBJ reads path and fan-triangulates every polygon into one or more
// Triangle values. Payload is set to the triangle's position in the
// returned slice, giving each a stable index before the BVH build reorders
// them.
//
// Grounded on recast.MeshLoaderObj's face-loading loop (fan triangulation
// from p[0], p[i-1], p[i]); adapted to gobj.Polygon's actual shape, a slice
// of resolved Vertex values rather than vertex indices.
func loadOBJ(path string) ([]trace.Triangle, error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return nil, err
	}

	var tris []trace.Triangle
	for _, poly := range obj.Polys() {
		for i := 2; i < len(poly); i++ {
			tris = append(tris, trace.Triangle{
				A:       vertexToVec3(poly[0]),
				B:       vertexToVec3(poly[i-1]),
				C:       vertexToVec3(poly[i]),
				Payload: uint32(len(tris)),
			})
		}
	}
	return tris, nil
}

func vertexToVec3(v gobj.Vertex) d3.Vec3 {
	return d3.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
