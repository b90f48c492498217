// File: types.go
// Role: Core handle types, Vertex/HalfEdge/Face records, the Mesh arena
// store, sentinel errors, and NewMesh.
package dcel

import (
	"errors"

	"github.com/theoCanji/hull3d/vector3"
)

// Sentinel errors for dcel operations. Callers branch with errors.Is;
// messages are stable and never stringified into other sentinels.
var (
	// ErrInvalidFace indicates CreateFace was given fewer than three points.
	ErrInvalidFace = errors.New("dcel: face must have at least three vertices")

	// ErrFaceNotFound indicates a FaceID handle does not name a live face.
	ErrFaceNotFound = errors.New("dcel: face not found")

	// ErrVertexNotFound indicates a VertexID handle is out of range.
	ErrVertexNotFound = errors.New("dcel: vertex not found")
)

// VertexID is a stable handle into Mesh's vertex arena. Vertices are
// referred to by handle; AddVertex (which CreateFace also uses)
// deduplicates by exact coordinates, so identical coordinates always map to
// the same VertexID within one Mesh.
type VertexID int

// HalfEdgeID is a stable handle into Mesh's half-edge arena.
type HalfEdgeID int

// FaceID is a stable handle into Mesh's face arena.
type FaceID int

// NoHalfEdge is the sentinel HalfEdgeID meaning "absent" — a vertex with no
// incident edge yet, or a half-edge field not wired up.
const NoHalfEdge HalfEdgeID = -1

// NoFace is the sentinel FaceID meaning "absent" — a detached half-edge, or
// a vertex reported to no face.
const NoFace FaceID = -1

// Vertex is a 3D point with an optional incident half-edge.
type Vertex struct {
	Point vector3.Vec3
	Edge  HalfEdgeID // arbitrary incident half-edge, or NoHalfEdge
}

// HalfEdge is directed from Start to End. Next/Prev walk the same face's
// cycle counter-clockwise as seen from outside; Twin is the oppositely
// directed half-edge along the same undirected arc.
type HalfEdge struct {
	Start, End VertexID
	Twin       HalfEdgeID
	Next, Prev HalfEdgeID
	Face       FaceID // NoFace if this half-edge is currently detached
}

// Face holds a representative half-edge of its (always triangular) cycle.
type Face struct {
	edge HalfEdgeID // NoHalfEdge marks a freed, reusable slot
}

// Edge returns the face's representative half-edge.
func (f Face) Edge() HalfEdgeID { return f.edge }

// vertexPair is the edgeIndex key: an ordered pair of vertex handles.
type vertexPair struct {
	From, To VertexID
}

// Mesh is the DCEL store: three arenas (vertices, half-edges, faces) plus
// the edge index used to locate a new half-edge's twin. The vertex arena
// never shrinks; half-edge and face arenas recycle freed slots via
// freeHalfEdges/freeFaces, per the module's memory discipline.
type Mesh struct {
	vertices []Vertex
	halfEdge []HalfEdge
	face     []Face

	vertexIndex map[vector3.Vec3]VertexID
	edgeIndex   map[vertexPair]HalfEdgeID

	freeHalfEdges []HalfEdgeID
	freeFaces     []FaceID
	faceLive      []bool // parallel to face; true iff the slot is in use
}

// NewMesh returns an empty Mesh ready for vertex and face construction.
func NewMesh() *Mesh {
	return &Mesh{
		vertexIndex: make(map[vector3.Vec3]VertexID),
		edgeIndex:   make(map[vertexPair]HalfEdgeID),
	}
}

// VertexCount returns the number of distinct vertices ever added.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of currently live faces.
func (m *Mesh) FaceCount() int {
	n := 0
	for _, live := range m.faceLive {
		if live {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of live undirected arcs (half the entries
// in the edge index, since every live arc has exactly two directed
// entries).
func (m *Mesh) EdgeCount() int {
	return len(m.edgeIndex) / 2
}

// HalfEdgeArenaSize returns the total number of half-edge slots ever
// allocated, live or freed. A detach/recreate cycle that reuses a
// dangling slot leaves this unchanged; one that leaks it grows the arena
// by slots that never return to freeHalfEdges.
func (m *Mesh) HalfEdgeArenaSize() int { return len(m.halfEdge) }

// Vertex returns the vertex record for id.
// Complexity: O(1).
func (m *Mesh) Vertex(id VertexID) (Vertex, error) {
	if id < 0 || int(id) >= len(m.vertices) {
		return Vertex{}, ErrVertexNotFound
	}
	return m.vertices[id], nil
}

// HalfEdge returns the half-edge record for id.
// Complexity: O(1).
func (m *Mesh) HalfEdge(id HalfEdgeID) HalfEdge {
	return m.halfEdge[id]
}

// Face returns the face record for id.
func (m *Mesh) Face(id FaceID) (Face, error) {
	if id < 0 || int(id) >= len(m.face) || !m.faceLive[id] {
		return Face{}, ErrFaceNotFound
	}
	return m.face[id], nil
}
