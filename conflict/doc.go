// Package conflict maintains the bidirectional conflict graph between
// not-yet-absorbed input points and the hull faces that can currently see
// them.
//
// The forward map answers "which face, if any, currently claims this
// point" in O(1); the inverse map answers "which points does this face
// see" in O(1) amortized, which is exactly the query the incremental
// driver needs when a face is about to be excised and its conflict list
// must be redistributed to the newly attached faces. The two maps are
// mutated only through Attach/MarkInterior/RemoveFace, which keep them
// mutually consistent by construction rather than by convention.
//
// Graph is driver-owned: it never touches a dcel.Mesh directly, it only
// indexes the handles the driver hands it.
package conflict
