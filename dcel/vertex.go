// File: vertex.go
// Role: Vertex lifecycle — AddVertex (create-or-dedupe) and enumeration.
package dcel

import "github.com/theoCanji/hull3d/vector3"

// AddVertex returns the handle for p, creating a new vertex if no existing
// one shares p's coordinates exactly (dedup-by-coordinate-equality, per the
// DCEL's create_face contract step 1). A vertex is created on first
// reference and persists for the mesh's lifetime — AddVertex never removes
// a vertex.
//
// Complexity: O(1) amortized (map lookup/insert).
func (m *Mesh) AddVertex(p vector3.Vec3) VertexID {
	if id, ok := m.vertexIndex[p]; ok {
		return id
	}
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{Point: p, Edge: NoHalfEdge})
	m.vertexIndex[p] = id
	return id
}

// HasVertex reports whether p has already been added.
func (m *Mesh) HasVertex(p vector3.Vec3) (VertexID, bool) {
	id, ok := m.vertexIndex[p]
	return id, ok
}

// Vertices returns every vertex handle added so far, in ascending
// (creation) order. Unlike Faces, this is not filtered by liveness: per the
// documented vertex lifecycle, a vertex is never removed once added.
//
// Complexity: O(V).
func (m *Mesh) Vertices() []VertexID {
	out := make([]VertexID, len(m.vertices))
	for i := range m.vertices {
		out[i] = VertexID(i)
	}
	return out
}
