package hull

import "github.com/theoCanji/hull3d/vector3"

// IsConvex is a diagnostic verifier: for every face of h, it tests every
// hull vertex not on that face against the face's supporting plane.
// Returns true iff no vertex lies strictly on the outward side of any
// face, i.e. the visibility predicate returns false for every
// (face, vertex) pair.
//
// This is O(F*V) and is meant for tests and assertions, not for use on
// the hot insertion path.
func IsConvex(h *Hull) bool {
	faces := h.Faces()
	vertices := h.Vertices()

	for _, f := range faces {
		tri, err := h.FaceVertices(f)
		if err != nil {
			return false
		}
		onFace := map[int]bool{int(tri[0]): true, int(tri[1]): true, int(tri[2]): true}

		p1, err1 := h.mesh.Vertex(tri[0])
		p2, err2 := h.mesh.Vertex(tri[1])
		p3, err3 := h.mesh.Vertex(tri[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return false
		}

		for _, v := range vertices {
			if onFace[int(v)] {
				continue
			}
			vertex, err := h.mesh.Vertex(v)
			if err != nil {
				return false
			}
			if vector3.Visible(p1.Point, p2.Point, p3.Point, vertex.Point) {
				return false
			}
		}
	}
	return true
}
