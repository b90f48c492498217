package hull

import (
	"github.com/theoCanji/hull3d/conflict"
	"github.com/theoCanji/hull3d/dcel"
	"github.com/theoCanji/hull3d/vector3"
)

// insertPoint processes the next point in the randomized insertion
// order. If the point has no conflict face it is interior: its vertex is
// added to the mesh only if interiorRetained requests it. Otherwise the
// visible region is excised via the horizon search, a fan of new faces is
// attached around the horizon, and every displaced point is redistributed
// against the new faces.
func insertPoint(mesh *dcel.Mesh, graph *conflict.Graph, points []vector3.Vec3, i int, interiorRetained bool) {
	key := dcel.VertexID(i)
	f0, ok := graph.FaceOf(key)
	if !ok {
		if interiorRetained {
			mesh.AddVertex(points[i])
		}
		return
	}

	result := findHorizon(mesh, graph, f0, points[i])
	newFaces := attachFan(mesh, points[i], result.horizon)
	redistribute(mesh, graph, points, result.displaced, newFaces)
}

// attachFan creates one new triangular face per horizon half-edge,
// fanning out from p. A horizon half-edge (a, b) was CCW on the now-
// removed visible face's side, so (a, b, p) is CCW on the new face's
// outward side: create_face's twin-adoption picks up the horizon
// survivor automatically, and the two new (b, p) / (p, a) half-edges
// pair off with neighboring fan triangles as they are created.
func attachFan(mesh *dcel.Mesh, p vector3.Vec3, horizon []dcel.HalfEdgeID) []dcel.FaceID {
	faces := make([]dcel.FaceID, 0, len(horizon))
	for _, e := range horizon {
		he := mesh.HalfEdge(e)
		a, err := mesh.Vertex(he.Start)
		if err != nil {
			continue
		}
		b, err := mesh.Vertex(he.End)
		if err != nil {
			continue
		}
		f, err := mesh.CreateFace(a.Point, b.Point, p)
		if err != nil {
			continue
		}
		faces = append(faces, f)
	}
	return faces
}

// redistribute tests every displaced point against each newly created
// face, in order, attaching it to the first one that sees it. Points
// seen by none of the new faces are marked interior.
func redistribute(mesh *dcel.Mesh, graph *conflict.Graph, points []vector3.Vec3, displaced []dcel.VertexID, newFaces []dcel.FaceID) {
	for _, key := range displaced {
		attachToFirstVisible(mesh, graph, key, points[int(key)], newFaces)
	}
}
