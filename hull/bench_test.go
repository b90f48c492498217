package hull_test

import (
	"math/rand"
	"testing"

	"github.com/theoCanji/hull3d/hull"
	"github.com/theoCanji/hull3d/vector3"
)

// benchSinkHull prevents the compiler from eliding Build's work.
var benchSinkHull *hull.Hull

func randomCloud(n int, seed int64) []vector3.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vector3.Vec3, n)
	for i := range pts {
		pts[i] = vector3.New(rng.Float64()*1000, rng.Float64()*1000, rng.Float64()*1000)
	}
	return pts
}

// BenchmarkBuild_1000Points measures the full incremental build over a
// thousand-point random cloud, the dominant cost center of this module.
func BenchmarkBuild_1000Points(b *testing.B) {
	pts := randomCloud(1000, 123)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := hull.Build(pts, hull.WithSeed(int64(i)))
		if err != nil {
			b.Fatalf("Build: %v", err)
		}
		benchSinkHull = h
	}
}
