// File: face.go
// Role: Face lifecycle — CreateFace, RemoveFace, and the half-edge/face
// arena allocators backing them.
//
// CreateFace and RemoveFace are the mesh's only face and half-edge
// mutations; apart from AddVertex, which only appends vertices, every
// other exported method is a read. Together they preserve
// the structure's invariants (twin symmetry, three-step face cycles,
// e.Face == f for every e in f's cycle) at every call boundary — see
// doc.go.
package dcel

import "github.com/theoCanji/hull3d/vector3"

// allocHalfEdge returns a fresh HalfEdgeID, reusing a freed slot if one is
// available.
func (m *Mesh) allocHalfEdge(e HalfEdge) HalfEdgeID {
	if n := len(m.freeHalfEdges); n > 0 {
		id := m.freeHalfEdges[n-1]
		m.freeHalfEdges = m.freeHalfEdges[:n-1]
		m.halfEdge[id] = e
		return id
	}
	id := HalfEdgeID(len(m.halfEdge))
	m.halfEdge = append(m.halfEdge, e)
	return id
}

// allocFace returns a fresh FaceID, reusing a freed slot if one is
// available.
func (m *Mesh) allocFace(edge HalfEdgeID) FaceID {
	if n := len(m.freeFaces); n > 0 {
		id := m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
		m.face[id] = Face{edge: edge}
		m.faceLive[id] = true
		return id
	}
	id := FaceID(len(m.face))
	m.face = append(m.face, Face{edge: edge})
	m.faceLive = append(m.faceLive, true)
	return id
}

// CreateFace allocates a new triangular face bounded by the given points,
// in CCW order as seen from outside. Precondition: at least three points,
// which after deduplication-by-coordinate name distinct vertices.
//
// Steps (mirrors the DCEL contract exactly):
//
//  1. Obtain canonical vertex handles for each point (AddVertex dedupes by
//     coordinate equality).
//  2. For each consecutive pair (v_i, v_{i+1}), create a new half-edge. If
//     the opposite-direction key already indexes an existing half-edge,
//     adopt it as the twin; otherwise create a fresh twin with no face
//     assigned yet. If the forward-direction key already indexes a
//     half-edge (a dangling one left behind by an earlier RemoveFace),
//     reuse that slot instead of allocating a new one, so the dangling
//     half-edge never leaks out of the arena unfreed.
//  3. Insert both directed entries into the edge index.
//  4. Wire Next/Prev cyclically around the new face's half-edges.
//  5. Allocate the face, point it at the first new half-edge, and set
//     Face on each of the three new half-edges.
//
// After CreateFace returns, the new face and its bounding half-edges
// satisfy every DCEL invariant; the twin half-edges' Face fields are left
// exactly as they were (possibly still NoFace, if their own face hasn't
// been created yet).
//
// Complexity: O(n) in the number of points (n == 3 for every face this
// module ever builds).
func (m *Mesh) CreateFace(points ...vector3.Vec3) (FaceID, error) {
	if len(points) < 3 {
		return NoFace, ErrInvalidFace
	}

	verts := make([]VertexID, len(points))
	for i, p := range points {
		verts[i] = m.AddVertex(p)
	}

	n := len(verts)
	newEdges := make([]HalfEdgeID, n)
	for i := 0; i < n; i++ {
		from := verts[i]
		to := verts[(i+1)%n]

		twinKey := vertexPair{From: to, To: from}
		var twin HalfEdgeID
		if existing, ok := m.edgeIndex[twinKey]; ok {
			twin = existing
		} else {
			twin = m.allocHalfEdge(HalfEdge{Start: to, End: from, Twin: NoHalfEdge, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace})
		}

		forwardKey := vertexPair{From: from, To: to}
		var e HalfEdgeID
		if stale, ok := m.edgeIndex[forwardKey]; ok {
			// stale names a dangling half-edge a prior RemoveFace couldn't
			// free (its twin was still live at the time). Overwrite it in
			// place rather than letting allocHalfEdge hand out a fresh ID
			// and abandoning this one outside the free list.
			e = stale
			m.halfEdge[e] = HalfEdge{Start: from, End: to, Twin: twin, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace}
		} else {
			e = m.allocHalfEdge(HalfEdge{Start: from, End: to, Twin: twin, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace})
		}
		m.halfEdge[twin].Twin = e

		m.edgeIndex[forwardKey] = e
		m.edgeIndex[twinKey] = twin

		newEdges[i] = e

		if m.vertices[from].Edge == NoHalfEdge {
			m.vertices[from].Edge = e
		}
	}

	for i := 0; i < n; i++ {
		m.halfEdge[newEdges[i]].Next = newEdges[(i+1)%n]
		m.halfEdge[newEdges[i]].Prev = newEdges[(i-1+n)%n]
	}

	f := m.allocFace(newEdges[0])
	for _, e := range newEdges {
		m.halfEdge[e].Face = f
	}

	debugAssert(m.halfEdge[newEdges[0]].Next != NoHalfEdge, "CreateFace: face %d has an unwired Next pointer", f)
	m.debugCheckInvariants("CreateFace")

	return f, nil
}

// RemoveFace excises f from the mesh. For each half-edge e in f's cycle:
// e.Face is cleared. If e.Twin's Face is also absent (both sides now
// detached), the undirected arc is gone — both directed edge-index entries
// are deleted and both half-edge slots are freed for reuse. Otherwise e is
// retained as a dangling half-edge, so the still-attached neighbor across
// Twin can observe Twin.Face == NoFace (the signal the horizon search uses
// to detect "the other side was removed this round").
//
// RemoveFace never errors: a FaceID produced by this Mesh always names a
// traversable three-cycle.
//
// Complexity: O(1) — exactly three half-edges.
func (m *Mesh) RemoveFace(f FaceID) {
	if f < 0 || int(f) >= len(m.face) || !m.faceLive[f] {
		return
	}

	start := m.face[f].edge
	e := start
	for {
		next := m.halfEdge[e].Next
		m.detachHalfEdge(e)
		e = next
		if e == start {
			break
		}
	}

	m.face[f] = Face{edge: NoHalfEdge}
	m.faceLive[f] = false
	m.freeFaces = append(m.freeFaces, f)

	debugAssert(!m.faceLive[f], "RemoveFace: face %d still marked live after removal", f)
	m.debugCheckInvariants("RemoveFace")
}

// detachHalfEdge clears e's Face and, if its twin is also detached,
// deletes both directed edge-index entries and frees both half-edge slots.
func (m *Mesh) detachHalfEdge(e HalfEdgeID) {
	he := m.halfEdge[e]
	m.halfEdge[e].Face = NoFace

	twin := he.Twin
	if twin == NoHalfEdge || m.halfEdge[twin].Face != NoFace {
		return // twin still bounds a live face; retain e as a dangling half-edge.
	}

	delete(m.edgeIndex, vertexPair{From: he.Start, To: he.End})
	delete(m.edgeIndex, vertexPair{From: he.End, To: he.Start})
	m.freeHalfEdges = append(m.freeHalfEdges, e, twin)

	debugAssert(e != twin, "detachHalfEdge: half-edge %d is its own twin", e)
}
