// Package hull implements the randomized incremental 3D convex hull
// algorithm over the dcel and conflict packages.
//
// Build is the single synchronous entry point: it takes a point cloud,
// a randomized insertion order, and grows a closed triangulated polytope
// one point at a time, maintaining a bidirectional conflict graph between
// not-yet-absorbed points and the faces that can see them. There is no
// background goroutine, no partial result, and no incremental update after
// Build returns; a finished Hull is read-only.
//
// Configuration goes through functional options (Option/WithSeed/WithRand/
// WithInteriorRetained/WithSeedSelection) rather than a config struct,
// matching this module's convention for tunable constructors.
package hull
