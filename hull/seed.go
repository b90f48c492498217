package hull

import (
	"github.com/theoCanji/hull3d/vector3"
)

// seedResult is the chosen initial tetrahedron, as indices into the
// caller's point slice.
type seedResult struct {
	idx [4]int
}

// chooseSeed dispatches to the configured SeedSelection strategy.
func chooseSeed(points []vector3.Vec3, selection SeedSelection) (seedResult, bool) {
	switch selection {
	case SeedFirstFour:
		return seedFirstFour(points)
	default:
		return seedExtremes(points)
	}
}

// seedFirstFour reproduces the literal original behavior: the first four
// input points, in input order, rejected only if they are coplanar.
func seedFirstFour(points []vector3.Vec3) (seedResult, bool) {
	if len(points) < 4 {
		return seedResult{}, false
	}
	r := seedResult{idx: [4]int{0, 1, 2, 3}}
	if tetrahedronDegenerate(points, r.idx) {
		return seedResult{}, false
	}
	return r, true
}

// tetrahedronDegenerate reports whether the four indexed points have a
// near-zero-volume tetrahedron, i.e. the three edge vectors from the
// first point span a degenerate (near-zero) normal.
func tetrahedronDegenerate(points []vector3.Vec3, idx [4]int) bool {
	p0, p1, p2, p3 := points[idx[0]], points[idx[1]], points[idx[2]], points[idx[3]]
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if vector3.IsDegenerateNormal(n) {
		return true
	}
	vol := n.Dot(p3.Sub(p0))
	return vol*vol < vector3.EpsilonDegenerate
}

// seedExtremes scans for the six axis extremes (min/max on each of X, Y,
// Z), picks the pair farthest apart as the first two seed vertices, the
// extreme farthest from the line through them as the third, and the
// extreme with the largest absolute signed tetrahedron volume against the
// first three as the fourth. Falls back to a full scan over every input
// point if the six extremes cannot produce a non-degenerate choice.
func seedExtremes(points []vector3.Vec3) (seedResult, bool) {
	if len(points) < 4 {
		return seedResult{}, false
	}

	candidates := axisExtremeIndices(points)

	a, b, ok := farthestPair(points, candidates)
	if !ok {
		a, b, ok = farthestPair(points, allIndices(len(points)))
		if !ok {
			return seedResult{}, false
		}
	}

	c, ok := farthestFromLine(points, candidates, a, b)
	if !ok {
		c, ok = farthestFromLine(points, allIndices(len(points)), a, b)
		if !ok {
			return seedResult{}, false
		}
	}

	d, ok := largestVolume(points, candidates, a, b, c)
	if !ok {
		d, ok = largestVolume(points, allIndices(len(points)), a, b, c)
		if !ok {
			return seedResult{}, false
		}
	}

	r := seedResult{idx: [4]int{a, b, c, d}}
	if tetrahedronDegenerate(points, r.idx) {
		return seedResult{}, false
	}
	return r, true
}

// axisExtremeIndices returns, for each of the six directions (±X, ±Y,
// ±Z), the index of the input point extremal in that direction.
// Duplicates are possible and are left in the caller's hands (farthestPair
// and friends tolerate repeated indices).
func axisExtremeIndices(points []vector3.Vec3) []int {
	minX, maxX, minY, maxY, minZ, maxZ := 0, 0, 0, 0, 0, 0
	for i, p := range points {
		if p.X < points[minX].X {
			minX = i
		}
		if p.X > points[maxX].X {
			maxX = i
		}
		if p.Y < points[minY].Y {
			minY = i
		}
		if p.Y > points[maxY].Y {
			maxY = i
		}
		if p.Z < points[minZ].Z {
			minZ = i
		}
		if p.Z > points[maxZ].Z {
			maxZ = i
		}
	}
	return []int{minX, maxX, minY, maxY, minZ, maxZ}
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// farthestPair returns the pair of candidate indices with the largest
// squared distance between them.
func farthestPair(points []vector3.Vec3, candidates []int) (int, int, bool) {
	bestA, bestB := -1, -1
	best := -1.0
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			d2 := points[a].Sub(points[b]).LengthSquared()
			if d2 > best {
				best, bestA, bestB = d2, a, b
			}
		}
	}
	if bestA < 0 {
		return 0, 0, false
	}
	return bestA, bestB, true
}

// farthestFromLine returns the candidate whose perpendicular distance to
// the line through points[a]-points[b] is largest.
func farthestFromLine(points []vector3.Vec3, candidates []int, a, b int) (int, bool) {
	dir := points[b].Sub(points[a])
	dirLen2 := dir.LengthSquared()
	if dirLen2 < vector3.EpsilonDegenerate {
		return 0, false
	}

	best := -1
	bestDist2 := -1.0
	for _, idx := range candidates {
		if idx == a || idx == b {
			continue
		}
		w := points[idx].Sub(points[a])
		cross := w.Cross(dir)
		dist2 := cross.LengthSquared() / dirLen2
		if dist2 > bestDist2 {
			bestDist2, best = dist2, idx
		}
	}
	if best < 0 || bestDist2 < vector3.EpsilonDegenerate {
		return 0, false
	}
	return best, true
}

// largestVolume returns the candidate maximizing the absolute signed
// tetrahedron volume formed with points[a], points[b], points[c].
func largestVolume(points []vector3.Vec3, candidates []int, a, b, c int) (int, bool) {
	n := points[b].Sub(points[a]).Cross(points[c].Sub(points[a]))

	best := -1
	bestAbs := -1.0
	for _, idx := range candidates {
		if idx == a || idx == b || idx == c {
			continue
		}
		vol := n.Dot(points[idx].Sub(points[a]))
		abs := vol
		if abs < 0 {
			abs = -abs
		}
		if abs > bestAbs {
			bestAbs, best = abs, idx
		}
	}
	if best < 0 || bestAbs*bestAbs < vector3.EpsilonDegenerate {
		return 0, false
	}
	return best, true
}
