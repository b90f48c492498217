// File: traverse.go
// Role: Read-only traversal helpers and face enumeration.
package dcel

// Faces returns every live face handle, in ascending handle order. Freed
// slots (faces removed by RemoveFace and not yet reallocated) are skipped;
// since freed slots are reused, ascending handle order is not creation
// order. The order is stable across calls as long as the mesh is not
// mutated in between.
//
// Complexity: O(F_allocated).
func (m *Mesh) Faces() []FaceID {
	out := make([]FaceID, 0, len(m.face))
	for i, live := range m.faceLive {
		if live {
			out = append(out, FaceID(i))
		}
	}
	return out
}

// FaceVertices returns f's three bounding vertices in CCW order as seen
// from outside, starting from the face's representative half-edge. Both
// FaceVertices and FaceEdges are finite and deterministic: walking Next
// three times from the representative always returns to it, by the
// three-step-cycle invariant.
func (m *Mesh) FaceVertices(f FaceID) ([3]VertexID, error) {
	face, err := m.Face(f)
	if err != nil {
		return [3]VertexID{}, err
	}
	var out [3]VertexID
	e := face.Edge()
	for i := 0; i < 3; i++ {
		out[i] = m.halfEdge[e].Start
		e = m.halfEdge[e].Next
	}
	return out, nil
}

// FaceEdges returns f's three bounding half-edges, in the same CCW order
// FaceVertices uses.
func (m *Mesh) FaceEdges(f FaceID) ([3]HalfEdgeID, error) {
	face, err := m.Face(f)
	if err != nil {
		return [3]HalfEdgeID{}, err
	}
	var out [3]HalfEdgeID
	e := face.Edge()
	for i := 0; i < 3; i++ {
		out[i] = e
		e = m.halfEdge[e].Next
	}
	return out, nil
}
