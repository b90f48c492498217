package hull

import (
	"fmt"

	"github.com/theoCanji/hull3d/conflict"
	"github.com/theoCanji/hull3d/dcel"
	"github.com/theoCanji/hull3d/vector3"
)

// Build runs the randomized incremental convex hull algorithm over
// points and returns the resulting Hull. It is the single synchronous
// entry point into this package: the entire mesh is constructed before
// Build returns, and the returned Hull is read-only thereafter.
//
// The conflict graph tracks points by their index into the input slice,
// not by a mesh-allocated dcel.VertexID: a point only receives a real
// vertex slot in the mesh once it is actually absorbed into the hull
// (either by lying on a newly created face, or, with
// WithInteriorRetained, by being classified interior). This is what
// keeps an interior point out of the mesh's vertex arena by default.
func Build(points []vector3.Vec3, opts ...Option) (*Hull, error) {
	if len(points) < 4 {
		return nil, ErrInsufficientPoints
	}
	cfg := newBuildConfig(opts...)

	seed, ok := chooseSeed(points, cfg.seedSelection)
	if !ok {
		return nil, ErrDegenerateInput
	}

	mesh := dcel.NewMesh()
	graph := conflict.NewGraph()

	if err := buildSeedTetrahedron(mesh, points, seed.idx); err != nil {
		return nil, err
	}

	order := randomInsertionOrder(len(points), seed.idx, cfg.rng)
	seedConflicts(mesh, graph, points, order)

	for _, i := range order {
		insertPoint(mesh, graph, points, i, cfg.interiorRetained)
	}

	return &Hull{mesh: mesh}, nil
}

// buildSeedTetrahedron creates the four triangular faces of the initial
// tetrahedron from the chosen seed indices, orienting each face away from
// the tetrahedron's centroid so every outward normal is consistent. The
// four seed points are always absorbed into the mesh: they are on the
// hull by construction.
func buildSeedTetrahedron(mesh *dcel.Mesh, points []vector3.Vec3, idx [4]int) error {
	p0, p1, p2, p3 := points[idx[0]], points[idx[1]], points[idx[2]], points[idx[3]]
	centroid := vector3.Centroid(p0, p1, p2, p3)

	tris := [4][3]vector3.Vec3{
		{p0, p1, p2},
		{p0, p2, p3},
		{p0, p3, p1},
		{p1, p3, p2},
	}
	for _, tri := range tris {
		a, b, c := vector3.OrientOutward(tri[0], tri[1], tri[2], centroid)
		if _, err := mesh.CreateFace(a, b, c); err != nil {
			return fmt.Errorf("hull: building seed tetrahedron: %w", err)
		}
	}
	return nil
}

// randomInsertionOrder returns a uniformly random permutation of every
// point index except the four seed indices, which have already been
// absorbed into the initial tetrahedron.
func randomInsertionOrder(n int, seedIdx [4]int, rng rngSource) []int {
	isSeed := map[int]bool{seedIdx[0]: true, seedIdx[1]: true, seedIdx[2]: true, seedIdx[3]: true}
	rest := make([]int, 0, n-4)
	for i := 0; i < n; i++ {
		if !isSeed[i] {
			rest = append(rest, i)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	return rest
}

// seedConflicts tests every non-seed point against each of the four
// initial faces, attaching it to the first face that sees it, or marking
// it interior if none do. Point identity in the conflict graph is the
// point's index into the input slice.
func seedConflicts(mesh *dcel.Mesh, graph *conflict.Graph, points []vector3.Vec3, order []int) {
	faces := mesh.Faces()
	for _, i := range order {
		attachToFirstVisible(mesh, graph, dcel.VertexID(i), points[i], faces)
	}
}

// attachToFirstVisible tests query against each candidate face in order,
// attaching key to the first one that sees it. If none see it, key is
// marked interior.
func attachToFirstVisible(mesh *dcel.Mesh, graph *conflict.Graph, key dcel.VertexID, query vector3.Vec3, faces []dcel.FaceID) bool {
	for _, f := range faces {
		if faceVisibleFrom(mesh, f, query) {
			graph.Attach(key, f)
			return true
		}
	}
	graph.MarkInterior(key)
	return false
}

// faceVisibleFrom tests query against f's supporting plane.
func faceVisibleFrom(mesh *dcel.Mesh, f dcel.FaceID, query vector3.Vec3) bool {
	verts, err := mesh.FaceVertices(f)
	if err != nil {
		return false
	}
	p1, err1 := mesh.Vertex(verts[0])
	p2, err2 := mesh.Vertex(verts[1])
	p3, err3 := mesh.Vertex(verts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return vector3.Visible(p1.Point, p2.Point, p3.Point, query)
}

// rngSource is the minimal surface insertion ordering needs from
// *rand.Rand, narrowed for testability.
type rngSource interface {
	Shuffle(n int, swap func(i, j int))
}
