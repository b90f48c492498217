// Package hull3d builds 3D convex hulls from point clouds using the
// randomized incremental algorithm over a half-edge mesh.
//
// 🚀 What is hull3d?
//
//	A small, dependency-light library that brings together:
//
//	  • A minimal 3D vector kernel with a single orientation predicate
//	  • An arena-backed DCEL mesh (vertices, half-edges, faces as handles)
//	  • A bidirectional conflict graph between pending points and faces
//	  • The incremental hull driver itself: seed, insert, repeat
//
// ✨ Why choose hull3d?
//
//   - Deterministic   — a fixed seed reproduces an identical hull
//   - Index-based     — no pointer graph, no GC pressure from the mesh
//   - Inspectable     — every face, edge, and vertex is a stable handle
//   - Pure Go         — the core algorithm has no I/O, no logging, no globals
//
// Everything is organized under four subpackages:
//
//	vector3/  — Vec3 arithmetic and the visibility/orientation predicate
//	dcel/     — the half-edge mesh and its invariants
//	conflict/ — the point-to-face conflict index the driver mutates
//	hull/     — Build(points, opts...) and the Hull query surface
//
// Quick example:
//
//	pts := []vector3.Vec3{
//	    vector3.New(0, 0, 0), vector3.New(1, 0, 0),
//	    vector3.New(0, 1, 0), vector3.New(0, 0, 1),
//	}
//	h, err := hull.Build(pts, hull.WithSeed(1))
//
// produces a four-face tetrahedron.
//
//	go get github.com/theoCanji/hull3d
package hull3d
