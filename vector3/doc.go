// Package vector3 provides the geometry kernel shared by the dcel, conflict,
// and hull packages: 3D vector arithmetic and the single orientation
// predicate that drives every visibility decision in the incremental hull
// algorithm.
//
// There is deliberately no normalization, matrix, or quaternion machinery
// here — the hull algorithm only ever needs subtraction, dot product, cross
// product, and a sign test. Keeping the kernel this small means the rest of
// the module has exactly one place to look for "is this arithmetic correct".
//
// The arithmetic itself is delegated to github.com/gazed/vu/math/lin's V3,
// the float64 3-element vector type already used for this exact concern
// elsewhere in this module's lineage. lin.V3 exposes a mutate-in-place,
// pointer-receiver API (v.Add(a, b) writes the sum into v and returns v);
// Vec3 stays a small immutable value type at this package's boundary and
// converts to/from a scratch lin.V3 around each call, since every other
// value type in this module (Vertex, HalfEdge, Face) is handled by value
// rather than by mutation.
//
// Epsilon policy:
//
//	EpsilonVisibility guards the orientation predicate itself: a dot product
//	within EpsilonVisibility of zero is treated as "not visible" (coplanar).
//
//	EpsilonDegenerate guards seed-tetrahedron construction: a candidate
//	normal with squared length below EpsilonDegenerate is rejected as
//	numerically unreliable.
package vector3
