package hull

import (
	"errors"

	"github.com/theoCanji/hull3d/dcel"
)

// Sentinel errors surfaced by Build. All other error kinds would indicate
// an implementation bug and are asserted against internally rather than
// returned.
var (
	// ErrInsufficientPoints is returned when fewer than four points are
	// supplied to Build.
	ErrInsufficientPoints = errors.New("hull: at least four points are required")

	// ErrDegenerateInput is returned when no non-degenerate seed
	// tetrahedron could be found in the input point set.
	ErrDegenerateInput = errors.New("hull: no non-degenerate seed tetrahedron found")
)

// Hull is the finished, read-only result of Build. It wraps a dcel.Mesh
// and exposes the query surface spec'd for a completed convex hull; it
// performs no further mutation of the mesh after Build returns.
type Hull struct {
	mesh *dcel.Mesh
}

// Vertices returns every vertex that participates in the hull surface.
// Whether interior-classified input points are also present depends on
// WithInteriorRetained (default: absent). A vertex that was on the hull
// earlier in the build but was later enclosed by a newer point is not
// reported.
func (h *Hull) Vertices() []dcel.VertexID {
	onSurface := make(map[dcel.VertexID]bool)
	for _, f := range h.mesh.Faces() {
		if tri, err := h.mesh.FaceVertices(f); err == nil {
			onSurface[tri[0]], onSurface[tri[1]], onSurface[tri[2]] = true, true, true
		}
	}
	var out []dcel.VertexID
	for _, v := range h.mesh.Vertices() {
		// A vertex with no incident half-edge was added on its own as a
		// retained interior point; it never bounded a face.
		if vertex, err := h.mesh.Vertex(v); err == nil && (onSurface[v] || vertex.Edge == dcel.NoHalfEdge) {
			out = append(out, v)
		}
	}
	return out
}

// Faces returns every live face of the hull, in stable ascending-handle
// order.
func (h *Hull) Faces() []dcel.FaceID {
	return h.mesh.Faces()
}

// FaceVertices returns f's three bounding vertices in CCW order as seen
// from outside the hull.
func (h *Hull) FaceVertices(f dcel.FaceID) ([3]dcel.VertexID, error) {
	return h.mesh.FaceVertices(f)
}

// FaceEdges returns f's three bounding half-edges in CCW order.
func (h *Hull) FaceEdges(f dcel.FaceID) ([3]dcel.HalfEdgeID, error) {
	return h.mesh.FaceEdges(f)
}

// Mesh exposes the underlying DCEL mesh directly, for callers that need
// lower-level access (debug dumps, invariant checks) beyond the Hull
// query surface.
func (h *Hull) Mesh() *dcel.Mesh {
	return h.mesh
}
