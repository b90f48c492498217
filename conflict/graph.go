package conflict

import "github.com/theoCanji/hull3d/dcel"

// Graph is the bidirectional conflict index between points and faces.
//
// owner maps a point to the single face currently claiming it, with
// dcel.NoFace meaning "no longer in conflict with anything" (either the
// point has been absorbed into the mesh or marked interior). seen is the
// inverse: for each face, the set of points that currently see it.
type Graph struct {
	owner map[dcel.VertexID]dcel.FaceID
	seen  map[dcel.FaceID]map[dcel.VertexID]struct{}
}

// NewGraph returns an empty conflict graph.
func NewGraph() *Graph {
	return &Graph{
		owner: make(map[dcel.VertexID]dcel.FaceID),
		seen:  make(map[dcel.FaceID]map[dcel.VertexID]struct{}),
	}
}

// detach removes v from whatever face it was previously attached to, if
// any. Callers must hold no external lock; Graph is not goroutine-safe,
// matching the single-threaded, synchronous contract of the driver that
// owns it.
func (g *Graph) detach(v dcel.VertexID) {
	f, ok := g.owner[v]
	if !ok || f == dcel.NoFace {
		return
	}
	if set, ok := g.seen[f]; ok {
		delete(set, v)
		if len(set) == 0 {
			delete(g.seen, f)
		}
	}
}

// Attach records that v currently sees f, replacing any previous claim v
// held (the mutual-consistency invariant: a point belongs to at most one
// face's conflict list at a time).
func (g *Graph) Attach(v dcel.VertexID, f dcel.FaceID) {
	g.detach(v)
	g.owner[v] = f
	set, ok := g.seen[f]
	if !ok {
		set = make(map[dcel.VertexID]struct{})
		g.seen[f] = set
	}
	set[v] = struct{}{}
}

// MarkInterior removes v from the conflict graph entirely: it sees no
// live face and will not be revisited by the driver.
func (g *Graph) MarkInterior(v dcel.VertexID) {
	g.detach(v)
	g.owner[v] = dcel.NoFace
}

// FaceOf reports the face v currently sees, if any. ok is false if v has
// never been attached, has been marked interior, or has already been
// absorbed into the hull.
func (g *Graph) FaceOf(v dcel.VertexID) (dcel.FaceID, bool) {
	f, ok := g.owner[v]
	if !ok || f == dcel.NoFace {
		return dcel.NoFace, false
	}
	return f, true
}

// PointsSeeing returns every point currently in f's conflict list. The
// result has no guaranteed order; callers that need determinism (tests,
// reproducible traces) should sort it themselves.
func (g *Graph) PointsSeeing(f dcel.FaceID) []dcel.VertexID {
	set, ok := g.seen[f]
	if !ok {
		return nil
	}
	out := make([]dcel.VertexID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

// RemoveFace detaches and returns every point that saw f, clearing both
// the forward and inverse entries. Callers invoke this when f is about
// to be excised from the mesh, then redistribute the returned points
// among the faces that replace it.
func (g *Graph) RemoveFace(f dcel.FaceID) []dcel.VertexID {
	pts := g.PointsSeeing(f)
	for _, v := range pts {
		delete(g.owner, v)
	}
	delete(g.seen, f)
	return pts
}
