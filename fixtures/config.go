package fixtures

import "math/rand"

// Option customizes a fixture constructor by mutating a config before the
// pattern is assembled. As a rule, option constructors never panic and
// ignore nil/zero inputs that would otherwise leave the config unusable.
type Option func(cfg *config)

// config holds the configurable parameters shared by fixture constructors:
// an RNG for stochastic generators and the target edge density for
// RandomSparse. Each constructor call builds its own config; config is not
// safe for concurrent mutation.
type config struct {
	rng     *rand.Rand
	density float64
}

// newConfig returns a config initialized with defaults, then applies each
// Option in order. Defaults: deterministic RNG seeded with 1, density 0.1.
func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:     rand.New(rand.NewSource(1)),
		density: 0.1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand seeded with the given value, for
// reproducible stochastic fixtures.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the target edge probability for RandomSparse. Values
// outside (0, 1] are ignored, leaving the previous density unchanged.
func WithDensity(density float64) Option {
	return func(cfg *config) {
		if density > 0 && density <= 1 {
			cfg.density = density
		}
	}
}
