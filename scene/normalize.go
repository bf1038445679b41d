package scene

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/go-suptracer/trace"
)

// normalize centers tris' bounding box on the origin and then pushes them
// back along -z by their own depth, so a pinhole camera sitting at the origin looking down
// -z always frames a freshly loaded mesh without per-scene camera tuning.
//
// Grounded on src/scene.rs's normalize: the 1.0x displacement variant, not
// the 1.5x constant from the simpler src/main.rs revision (see DESIGN.md).
func normalize(tris []trace.Triangle) {
	if len(tris) == 0 {
		return
	}

	bb := trace.SliceBounds(tris)
	cx := (bb.Min[0] + bb.Max[0]) / 2
	cy := (bb.Min[1] + bb.Max[1]) / 2
	cz := (bb.Min[2] + bb.Max[2]) / 2
	depth := bb.Max[2] - bb.Min[2]
	if depth < 0 {
		depth = -depth
	}
	dz := cz + depth

	for i := range tris {
		translate(tris[i].A, cx, cy, dz)
		translate(tris[i].B, cx, cy, dz)
		translate(tris[i].C, cx, cy, dz)
	}
}

// translate mutates v's backing array in place; d3.Vec3 is slice-backed, so
// no pointer receiver is needed to make the change visible to the caller.
func translate(v d3.Vec3, cx, cy, dz float32) {
	v[0] -= cx
	v[1] -= cy
	v[2] -= dz
}
