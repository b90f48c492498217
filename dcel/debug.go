// File: debug.go
// Role: Human-readable dumps for debugging, grounded in the original
// Python DCEL's __repr__/__str__ methods. Reimplemented on top of
// github.com/davecgh/go-spew instead of hand-rolled string concatenation,
// since spew already handles cyclic/slice-heavy structures and nil-safety
// that a manual Sprintf chain tends to get wrong at the edges.
package dcel

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig renders values with methods disabled and without pointer
// addresses or capacities, so spew prints vector3.Vec3's fields rather
// than calling its methods.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// String summarizes the mesh's size, mirroring DCEL.__repr__'s opening
// line in the original implementation.
func (m *Mesh) String() string {
	return fmt.Sprintf("dcel.Mesh: %d vertices, %d edges, %d faces", m.VertexCount(), m.EdgeCount(), m.FaceCount())
}

// DebugDump returns a verbose, multi-line rendering of every live vertex,
// directed edge, and face — the Go analog of the original DCEL's __repr__
// body (vertex list, edge list, face list), used for debugging rather than
// anywhere on the hot path.
func (m *Mesh) DebugDump() string {
	var b strings.Builder
	fmt.Fprintln(&b, m.String())

	fmt.Fprintln(&b, "vertices:")
	for i, v := range m.vertices {
		fmt.Fprintf(&b, "  [%d] %s\n", i, dumpConfig.Sdump(v.Point))
	}

	fmt.Fprintln(&b, "edges:")
	for pair, id := range m.edgeIndex {
		fmt.Fprintf(&b, "  %d->%d (half-edge %d, face %d)\n", pair.From, pair.To, id, m.halfEdge[id].Face)
	}

	fmt.Fprintln(&b, "faces:")
	for _, f := range m.Faces() {
		verts, _ := m.FaceVertices(f)
		fmt.Fprintf(&b, "  [%d] %v\n", f, verts)
	}

	return b.String()
}
