package vector3

import (
	"math"

	"github.com/gazed/vu/math/lin"
)

// Vec3 is a point or free vector in three-dimensional Euclidean space.
// A dcel vertex built from a Vec3 is referred to by handle; dcel's
// AddVertex deduplicates by exact coordinates, so two Vec3 values with
// identical components map to the same vertex of a mesh.
type Vec3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// toLin copies v into a fresh lin.V3, the representation lin's
// mutate-in-place API operates on.
func (v Vec3) toLin() lin.V3 {
	return lin.V3{X: v.X, Y: v.Y, Z: v.Z}
}

// fromLin converts a lin.V3 back into our value-typed Vec3.
func fromLin(r *lin.V3) Vec3 {
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// Sub returns v - w, component-wise.
func (v Vec3) Sub(w Vec3) Vec3 {
	a, b := v.toLin(), w.toLin()
	var r lin.V3
	r.Sub(&a, &b)
	return fromLin(&r)
}

// Add returns v + w, component-wise.
func (v Vec3) Add(w Vec3) Vec3 {
	a, b := v.toLin(), w.toLin()
	var r lin.V3
	r.Add(&a, &b)
	return fromLin(&r)
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	a := v.toLin()
	var r lin.V3
	r.Scale(&a, s)
	return fromLin(&r)
}

// Dot returns the dot product v . w.
func (v Vec3) Dot(w Vec3) float64 {
	a, b := v.toLin(), w.toLin()
	return a.Dot(&b)
}

// Cross returns the cross product v x w, right-hand rule.
func (v Vec3) Cross(w Vec3) Vec3 {
	a, b := v.toLin(), w.toLin()
	var r lin.V3
	r.Cross(&a, &b)
	return fromLin(&r)
}

// LengthSquared returns v . v. Avoids the sqrt in callers that only need a
// magnitude comparison (e.g. IsDegenerateNormal).
func (v Vec3) LengthSquared() float64 {
	a := v.toLin()
	return a.LenSqr()
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Centroid returns the arithmetic mean of pts. Callers pass an empty slice
// at their own peril; Centroid of zero points returns the zero vector.
func Centroid(pts ...Vec3) Vec3 {
	if len(pts) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / float64(len(pts)))
}
