package hull

import "math/rand"

// SeedSelection chooses how Build picks its initial four seed vertices.
type SeedSelection int

const (
	// SeedExtremes scans the input for well-separated axis extremes and
	// builds a seed tetrahedron from them. This is the default: it makes
	// a degenerate first-four-points seed far less likely on real data.
	SeedExtremes SeedSelection = iota

	// SeedFirstFour reproduces the literal original behavior: the first
	// four points of the input, in input order, with no scan. Kept for
	// callers who need exact parity with that simpler algorithm.
	SeedFirstFour
)

// Option customizes a Build call. Options are applied in order; later
// options override earlier ones.
type Option func(cfg *buildConfig)

// buildConfig holds the resolved, immutable-for-the-duration-of-Build
// configuration assembled from a caller's Option values.
type buildConfig struct {
	rng              *rand.Rand
	interiorRetained bool
	seedSelection    SeedSelection
}

// newBuildConfig returns a buildConfig seeded with defaults, then applies
// each opt in order.
func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{
		rng:              rand.New(rand.NewSource(1)),
		interiorRetained: false,
		seedSelection:    SeedExtremes,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand for the randomized insertion
// permutation, giving reproducible builds across runs.
func WithSeed(seed int64) Option {
	return func(cfg *buildConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit *rand.Rand source. A nil rng is a no-op,
// leaving whatever source was previously configured.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *buildConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithInteriorRetained controls whether points classified interior still
// get a (possibly isolated) vertex allocated in the resulting mesh.
// Default is false: interior points are absent from Hull.Vertices().
func WithInteriorRetained(retained bool) Option {
	return func(cfg *buildConfig) {
		cfg.interiorRetained = retained
	}
}

// WithSeedSelection chooses the strategy used to pick the initial seed
// tetrahedron. Panics if given an unknown SeedSelection constant, since
// that can only reach here through programmer error, never through
// caller-supplied data.
func WithSeedSelection(s SeedSelection) Option {
	return func(cfg *buildConfig) {
		switch s {
		case SeedExtremes, SeedFirstFour:
			cfg.seedSelection = s
		default:
			panic("hull: unknown SeedSelection value")
		}
	}
}
