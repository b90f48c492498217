package dcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoCanji/hull3d/dcel"
	"github.com/theoCanji/hull3d/vector3"
)

func tetrahedronPoints() (p1, p2, p3, p4 vector3.Vec3) {
	return vector3.New(0, 0, 0),
		vector3.New(1, 0, 0),
		vector3.New(0, 1, 0),
		vector3.New(0, 0, 1)
}

// buildTetrahedron wires the four CCW-oriented faces of the unit
// tetrahedron directly, mirroring DCEL.create_tetrahedron from the
// original source (minus the plotting).
func buildTetrahedron(t *testing.T) (*dcel.Mesh, [4]dcel.FaceID) {
	t.Helper()
	p1, p2, p3, p4 := tetrahedronPoints()
	centroid := vector3.Centroid(p1, p2, p3, p4)

	m := dcel.NewMesh()
	var faces [4]dcel.FaceID
	tris := [][3]vector3.Vec3{{p1, p2, p3}, {p1, p3, p4}, {p1, p4, p2}, {p2, p4, p3}}
	for i, tri := range tris {
		a, b, c := vector3.OrientOutward(tri[0], tri[1], tri[2], centroid)
		f, err := m.CreateFace(a, b, c)
		require.NoError(t, err)
		faces[i] = f
	}
	return m, faces
}

func TestCreateFace_TooFewPoints(t *testing.T) {
	m := dcel.NewMesh()
	_, err := m.CreateFace(vector3.New(0, 0, 0), vector3.New(1, 0, 0))
	assert.ErrorIs(t, err, dcel.ErrInvalidFace)
}

func TestCreateFace_VertexDedup(t *testing.T) {
	m := dcel.NewMesh()
	p1, p2, p3 := vector3.New(0, 0, 0), vector3.New(1, 0, 0), vector3.New(0, 1, 0)

	f, err := m.CreateFace(p1, p2, p3)
	require.NoError(t, err)

	verts, err := m.FaceVertices(f)
	require.NoError(t, err)

	seen := map[vector3.Vec3]bool{}
	for _, v := range verts {
		vertex, err := m.Vertex(v)
		require.NoError(t, err)
		seen[vertex.Point] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 3, m.VertexCount())

	// Re-adding the same three points as a second face must not allocate
	// new vertices.
	_, err = m.CreateFace(p3, p2, p1)
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
}

func TestCreateFace_AdoptsExistingTwin(t *testing.T) {
	m := dcel.NewMesh()
	p1, p2, p3 := vector3.New(0, 0, 0), vector3.New(1, 0, 0), vector3.New(0, 1, 0)
	p4 := vector3.New(1, 1, 0)

	fa, err := m.CreateFace(p1, p2, p3)
	require.NoError(t, err)
	fb, err := m.CreateFace(p2, p4, p3) // shares edge p3->p2 (as p2->p3 reversed)
	require.NoError(t, err)

	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, 5, m.EdgeCount()) // 3 triangle edges each, one shared => 5 undirected arcs.

	edgesA, err := m.FaceEdges(fa)
	require.NoError(t, err)
	edgesB, err := m.FaceEdges(fb)
	require.NoError(t, err)

	// The shared undirected arc's two half-edges must be twins of each other.
	foundTwin := false
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			heA := m.HalfEdge(ea)
			heB := m.HalfEdge(eb)
			if heA.Twin == eb && heB.Twin == ea {
				foundTwin = true
			}
		}
	}
	assert.True(t, foundTwin, "expected exactly one shared twin pair between adjacent faces")
}

func TestTetrahedron_Invariants(t *testing.T) {
	m, faces := buildTetrahedron(t)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 6, m.EdgeCount())
	require.NoError(t, m.CheckInvariants())

	for _, f := range faces {
		verts, err := m.FaceVertices(f)
		require.NoError(t, err)
		assert.Len(t, verts, 3)
	}
}

func TestRemoveFace_DanglingThenFullyDetached(t *testing.T) {
	m, faces := buildTetrahedron(t)

	// Remove one face: its three edges must report NoFace, but each twin
	// (belonging to a still-live neighboring face) must retain its own
	// Face unchanged, per the "dangling half-edge" rule.
	edges, err := m.FaceEdges(faces[0])
	require.NoError(t, err)

	m.RemoveFace(faces[0])
	assert.Equal(t, 3, m.FaceCount())

	for _, e := range edges {
		he := m.HalfEdge(e)
		assert.Equal(t, dcel.NoFace, he.Face)
		twin := m.HalfEdge(he.Twin)
		assert.NotEqual(t, dcel.NoFace, twin.Face, "twin's face must survive a single-sided detach")
	}
	// The undirected arc is still indexed (one side alive), so EdgeCount is unchanged.
	assert.Equal(t, 6, m.EdgeCount())

	// Removing the remaining three faces detaches every arc fully.
	m.RemoveFace(faces[1])
	m.RemoveFace(faces[2])
	m.RemoveFace(faces[3])
	assert.Equal(t, 0, m.FaceCount())
	assert.Equal(t, 0, m.EdgeCount())
}

func TestCreateFace_ReclaimsDanglingHalfEdgeSlot(t *testing.T) {
	m, faces := buildTetrahedron(t)

	// Recover faces[0]'s exact vertex order so re-adding it below rebuilds
	// the identical directed edges, not a reversed triangle.
	vertIDs, err := m.FaceVertices(faces[0])
	require.NoError(t, err)
	var a, b, c vector3.Vec3
	for i, pts := range []*vector3.Vec3{&a, &b, &c} {
		v, err := m.Vertex(vertIDs[i])
		require.NoError(t, err)
		*pts = v.Point
	}

	arenaBefore := m.HalfEdgeArenaSize()

	// faces[0]'s three half-edges are each shared with a still-live
	// neighboring face, so removing it leaves all three dangling rather
	// than freeing them outright.
	m.RemoveFace(faces[0])

	_, err = m.CreateFace(a, b, c)
	require.NoError(t, err)

	assert.Equal(t, arenaBefore, m.HalfEdgeArenaSize(),
		"recreating the same face should reclaim the three dangling half-edge slots, not leak them")
}

func TestFace_HandleReuseAfterRemoval(t *testing.T) {
	m := dcel.NewMesh()
	p1, p2, p3 := vector3.New(0, 0, 0), vector3.New(1, 0, 0), vector3.New(0, 1, 0)
	p4 := vector3.New(0, 0, 1)

	f1, err := m.CreateFace(p1, p2, p3)
	require.NoError(t, err)
	m.RemoveFace(f1)

	f2, err := m.CreateFace(p1, p3, p4)
	require.NoError(t, err)
	assert.Equal(t, f1, f2, "freed face slot should be reused by the next allocation")
}
