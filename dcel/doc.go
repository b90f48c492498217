// Package dcel implements a doubly-connected edge list: the half-edge mesh
// that stores the hull's boundary as it is built and mutated by the hull
// package's incremental driver.
//
// Cross-references between vertices, half-edges, and faces are typed
// integer handles into slice-backed arenas on *Mesh, not a pointer graph —
// the recommended restructuring for a cyclic topology in an
// ownership-strict language (see the "Design Notes" section of the project
// specification). Removed half-edge and face slots join a free list and are
// reused by later allocations; vertices are never removed, matching their
// documented lifecycle (created on first reference, persist for the
// algorithm's lifetime).
//
// Every Mesh method documents which of the structure's invariants it
// preserves:
//
//   - e.Twin(e).Twin == e for every half-edge e with a live twin.
//   - e.Next(e).Prev == e, and walking Next three times from any half-edge
//     in a face's cycle returns to that half-edge.
//   - For every face f and every half-edge e in f's cycle, e.Face == f.
//   - An undirected arc is represented by exactly two half-edges; both
//     have a non-absent Face at steady state (the surface is closed).
package dcel
