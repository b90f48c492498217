package vector3

// EpsilonVisibility bounds the orientation predicate's dot product: a value
// whose absolute value is below EpsilonVisibility is treated as exactly
// zero (coplanar), never as strictly positive. This is the single numeric
// edge-case policy for the whole module.
const EpsilonVisibility = 1e-9

// EpsilonDegenerate bounds the squared length of a candidate face normal
// during seed-tetrahedron construction. A normal below this threshold
// indicates four (near-)coplanar points; the caller should report
// hull.ErrDegenerateInput rather than trust the sign of a near-zero value.
const EpsilonDegenerate = 1e-18

// Visible reports whether q lies on the outward side of the oriented
// triangle (p1, p2, p3). The outward normal is (p2-p1) x (p3-p1) by the
// right-hand rule; visibility is strict positivity of
//
//	(q - p1) . ((p2 - p1) x (p3 - p1))
//
// A dot product within EpsilonVisibility of zero is "not visible" — the
// point is treated as coplanar with the face rather than outside it. This
// single predicate determines every combinatorial decision the incremental
// hull algorithm makes: which face a point conflicts with, which faces a
// horizon search marks as interior to the visible cap, and what IsConvex
// checks against every face's supporting plane.
func Visible(p1, p2, p3, q Vec3) bool {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	return q.Sub(p1).Dot(normal) > EpsilonVisibility
}

// IsDegenerateNormal reports whether n is too short to trust as a face
// normal — the hallmark of four (near-)coplanar seed points.
func IsDegenerateNormal(n Vec3) bool {
	return n.LengthSquared() < EpsilonDegenerate
}

// OrientOutward returns p1, p2, p3 reordered (swapping the last two at
// most) so that the outward normal of the resulting triangle points away
// from interior, a point already known to lie strictly inside the solid.
//
// Used exclusively when building the initial seed tetrahedron: every
// subsequent point's visibility test then has consistent sign semantics
// across the whole hull, because every starting face's normal already
// points outward.
func OrientOutward(p1, p2, p3, interior Vec3) (Vec3, Vec3, Vec3) {
	faceCentroid := Centroid(p1, p2, p3)
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	direction := faceCentroid.Sub(interior)
	if normal.Dot(direction) < 0 {
		return p1, p3, p2
	}
	return p1, p2, p3
}
