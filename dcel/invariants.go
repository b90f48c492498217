// File: invariants.go
// Role: Invariant verification used by tests and by debug-mode assertions
// elsewhere in the module. These are read-only checks — they never mutate
// the mesh, and a violation here always indicates a bug upstream (an
// invalid CreateFace/RemoveFace sequence), never a property of the input
// points.
package dcel

import "fmt"

// CheckInvariants walks every live face and verifies, for each of its
// half-edges e:
//
//   - e.Twin.Twin == e, when e has a live twin;
//   - e.Next.Prev == e;
//   - walking Next three times from e returns to e;
//   - e.Face == f.
//
// It returns the first violation found, formatted for a test failure
// message, or nil if the mesh is internally consistent.
//
// Complexity: O(F).
func (m *Mesh) CheckInvariants() error {
	for _, f := range m.Faces() {
		edges, err := m.FaceEdges(f)
		if err != nil {
			return fmt.Errorf("dcel: face %d: %w", f, err)
		}
		for _, e := range edges {
			he := m.halfEdge[e]
			if he.Face != f {
				return fmt.Errorf("dcel: half-edge %d claims face %d, expected %d", e, he.Face, f)
			}
			if he.Twin != NoHalfEdge && m.halfEdge[he.Twin].Twin != e {
				return fmt.Errorf("dcel: half-edge %d twin %d does not point back", e, he.Twin)
			}
			if m.halfEdge[he.Next].Prev != e {
				return fmt.Errorf("dcel: half-edge %d next %d does not point back via prev", e, he.Next)
			}
			if m.halfEdge[m.halfEdge[m.halfEdge[e].Next].Next].Next != e {
				return fmt.Errorf("dcel: half-edge %d's cycle does not close after three steps", e)
			}
		}
	}
	return nil
}
