package trace

import "github.com/arl/gogeo/f32/d3"

// Intersection is the result of a single watertight ray/triangle test: the
// hit distance and barycentric weights.
type Intersection struct {
	T, U, V, W float32
}

// RayData is the per-ray state the watertight test (Woop, Benthin & Wald,
// "Watertight Ray/Triangle Intersection", JCGT 2013) precomputes once and
// reuses across every triangle tested during a traversal: the dominant
// axis permutation and shear factors.
type RayData struct {
	o          d3.Vec3
	kx, ky, kz int
	sx, sy, sz float32
}

func maxDimAbs(d d3.Vec3) int {
	x, y, z := abs32(d[0]), abs32(d[1]), abs32(d[2])
	if x > y {
		if x > z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// NewRayData precomputes the shear-and-drop transform for a ray with origin
// o and direction d.
func NewRayData(o, d d3.Vec3) RayData {
	kz := maxDimAbs(d)
	var kx, ky int
	if d[kz] < 0 {
		kx, ky = (kz+1)%3, (kz+2)%3
	} else {
		kx, ky = (kz+2)%3, (kz+1)%3
	}
	return RayData{
		o:  o,
		kx: kx, ky: ky, kz: kz,
		sx: d[kx] / d[kz],
		sy: d[ky] / d[kz],
		sz: 1 / d[kz],
	}
}

// Intersect tests the triangle against the ray described by rd. The second
// return value is false on a miss, including a triangle at or behind the ray
// origin (t <= 0).
//
// The edge functions are recomputed in double precision whenever any of them
// rounds to exactly zero in single precision, so a zero only stands when the
// ray really lies on the edge; this is what keeps the test watertight (a ray
// through an edge shared by two triangles is never missed by both), and must
// not be skipped as an optimization. An edge function of exactly zero counts
// as inside, so such a ray reports a hit on both triangles; no tie-break
// selects one of them.
func Intersect(tri Triangle, rd RayData) (Intersection, bool) {
	kx, ky, kz := rd.kx, rd.ky, rd.kz

	ax := tri.A[0] - rd.o[0]
	ay := tri.A[1] - rd.o[1]
	az := tri.A[2] - rd.o[2]
	bx := tri.B[0] - rd.o[0]
	by := tri.B[1] - rd.o[1]
	bz := tri.B[2] - rd.o[2]
	cx := tri.C[0] - rd.o[0]
	cy := tri.C[1] - rd.o[1]
	cz := tri.C[2] - rd.o[2]

	A := [3]float32{ax, ay, az}
	B := [3]float32{bx, by, bz}
	C := [3]float32{cx, cy, cz}

	Ax := A[kx] - rd.sx*A[kz]
	Ay := A[ky] - rd.sy*A[kz]
	Bx := B[kx] - rd.sx*B[kz]
	By := B[ky] - rd.sy*B[kz]
	Cx := C[kx] - rd.sx*C[kz]
	Cy := C[ky] - rd.sy*C[kz]

	U := Cx*By - Cy*Bx
	V := Ax*Cy - Ay*Cx
	W := Bx*Ay - By*Ax

	if U == 0 || V == 0 || W == 0 {
		U = float32(float64(Cx)*float64(By) - float64(Cy)*float64(Bx))
		V = float32(float64(Ax)*float64(Cy) - float64(Ay)*float64(Cx))
		W = float32(float64(Bx)*float64(Ay) - float64(By)*float64(Ax))
	}

	if (U < 0 || V < 0 || W < 0) && (U > 0 || V > 0 || W > 0) {
		return Intersection{}, false
	}

	det := U + V + W
	if det == 0 {
		return Intersection{}, false
	}

	Az := rd.sz * A[kz]
	Bz := rd.sz * B[kz]
	Cz := rd.sz * C[kz]
	T := U*Az + V*Bz + W*Cz
	if (det < 0 && T >= 0) || (det > 0 && T <= 0) {
		return Intersection{}, false
	}

	invDet := 1 / det
	return Intersection{
		T: T * invDet,
		U: U * invDet,
		V: V * invDet,
		W: W * invDet,
	}, true
}
