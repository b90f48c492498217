package hull

import (
	"github.com/theoCanji/hull3d/conflict"
	"github.com/theoCanji/hull3d/dcel"
	"github.com/theoCanji/hull3d/vector3"
)

// horizonResult is the outcome of a single breadth-first horizon search:
// the ring of boundary half-edges the new point's fan will attach to, and
// every point displaced out of a removed face's conflict list.
type horizonResult struct {
	horizon   []dcel.HalfEdgeID
	displaced []dcel.VertexID
}

// horizonWalker encapsulates the mutable BFS state for a single horizon
// search: the FIFO queue, the set of already-enqueued faces, the faces
// scheduled for removal, and the horizon half-edges found so far.
type horizonWalker struct {
	mesh     *dcel.Mesh
	graph    *conflict.Graph
	points   []vector3.Vec3
	query    vector3.Vec3
	queue    []dcel.FaceID
	enqueued map[dcel.FaceID]bool
	toRemove []dcel.FaceID
	horizon  []dcel.HalfEdgeID
}

// visible reports whether face f is visible from the walker's query
// point, using f's three vertices as the supporting triangle.
func (w *horizonWalker) visible(f dcel.FaceID) bool {
	verts, err := w.mesh.FaceVertices(f)
	if err != nil {
		return false
	}
	p1, err1 := w.mesh.Vertex(verts[0])
	p2, err2 := w.mesh.Vertex(verts[1])
	p3, err3 := w.mesh.Vertex(verts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return vector3.Visible(p1.Point, p2.Point, p3.Point, w.query)
}

// findHorizon runs the breadth-first search described for horizon
// discovery: starting from the seed face (definitionally visible), it
// grows the connected visible region, collecting every boundary half-edge
// whose twin-face is absent or not visible, and every point displaced
// from a removed face's conflict list. It removes the visible faces from
// both the mesh and the conflict graph before returning.
func findHorizon(mesh *dcel.Mesh, graph *conflict.Graph, seed dcel.FaceID, query vector3.Vec3) horizonResult {
	w := &horizonWalker{
		mesh:     mesh,
		graph:    graph,
		query:    query,
		enqueued: make(map[dcel.FaceID]bool),
	}
	w.enqueue(seed)
	w.loop()
	return w.finish()
}

func (w *horizonWalker) enqueue(f dcel.FaceID) {
	w.enqueued[f] = true
	w.queue = append(w.queue, f)
	w.toRemove = append(w.toRemove, f)
}

func (w *horizonWalker) loop() {
	for len(w.queue) > 0 {
		f := w.queue[0]
		w.queue = w.queue[1:]

		edges, err := w.mesh.FaceEdges(f)
		if err != nil {
			continue
		}
		for _, e := range edges {
			he := w.mesh.HalfEdge(e)
			twin := w.mesh.HalfEdge(he.Twin)
			g := twin.Face

			switch {
			case g == dcel.NoFace || !w.visible(g):
				w.horizon = append(w.horizon, e)
			case !w.enqueued[g]:
				w.enqueue(g)
			}
		}
	}
	w.mesh.AssertInvariants("horizon BFS before face removal")
}

// finish drains the collected conflict lists, removes every scheduled
// face from the mesh and the conflict graph, and returns the horizon and
// displaced-point results.
func (w *horizonWalker) finish() horizonResult {
	var displaced []dcel.VertexID
	for _, f := range w.toRemove {
		displaced = append(displaced, w.graph.RemoveFace(f)...)
	}
	for _, f := range w.toRemove {
		w.mesh.RemoveFace(f)
	}
	w.mesh.AssertInvariants("horizon BFS after face removal")
	return horizonResult{horizon: w.horizon, displaced: displaced}
}
