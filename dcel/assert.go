package dcel

import "fmt"

// debugChecks gates dcel's invariant assertions. Flip it to true locally
// (and rebuild) to make CreateFace, RemoveFace, and detachHalfEdge verify
// the structure's invariants after every mutation; left false, debugAssert
// compiles away to nothing a release build pays for.
const debugChecks = false

// debugAssert panics with a descriptive message if cond is false and
// debugChecks is enabled. A failure here always indicates a bug in dcel
// itself, never a property of the input points — callers outside this
// package never see it.
func debugAssert(cond bool, format string, args ...any) {
	if !debugChecks {
		return
	}
	if !cond {
		panic(fmt.Sprintf("dcel: assertion failed: "+format, args...))
	}
}

// debugCheckInvariants runs CheckInvariants and panics on the first
// violation, when debugChecks is enabled. Call it after any mutation whose
// correctness depends on more than a single field assignment.
func (m *Mesh) debugCheckInvariants(where string) {
	if !debugChecks {
		return
	}
	if err := m.CheckInvariants(); err != nil {
		panic(fmt.Sprintf("dcel: invariant violated after %s: %v", where, err))
	}
}

// AssertInvariants is debugCheckInvariants exported for callers outside
// this package (the hull package's horizon search, which mutates the mesh
// indirectly through RemoveFace but owns the traversal that decides which
// faces to remove). A no-op unless debugChecks is true.
func (m *Mesh) AssertInvariants(where string) {
	m.debugCheckInvariants(where)
}
