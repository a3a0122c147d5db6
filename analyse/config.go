package analyse

import (
	"github.com/katalvlaran/symfact/order"
	"github.com/katalvlaran/symfact/supernode"
)

// Heuristic selects which supernode relaxation criterion Run applies.
type Heuristic int

const (
	// HeuristicFakeNzCap caps the cumulative fake nonzeros of each merged
	// supernode (H1): the primary rule, with a secondary small-supernode
	// rule as fallback.
	HeuristicFakeNzCap Heuristic = iota
	// HeuristicFlopRatio merges while the merged/unmerged flop ratio
	// stays within bound (H2).
	HeuristicFlopRatio
	// HeuristicFakeNzFraction merges while the fake-nonzero fraction of
	// the merged block stays within bound (H3).
	HeuristicFakeNzFraction
)

// Config tunes the analysis pipeline.
type Config struct {
	Orderer    order.Orderer
	Heuristic  Heuristic
	Relax      supernode.Config
	DebugCheck bool  // run the dense cross-check after assembling the result
	DebugSeed  int64 // RNG seed for the dense cross-check
}

// Option customizes a Config.
type Option func(cfg *Config)

// DefaultConfig returns the reference tuning: nested-dissection ordering,
// the fake-nonzero-cap heuristic, and the dense check disabled.
func DefaultConfig() Config {
	return Config{
		Orderer:    order.NestedDissection(),
		Heuristic:  HeuristicFakeNzCap,
		Relax:      supernode.DefaultConfig(),
		DebugCheck: false,
		DebugSeed:  1,
	}
}

// WithOrderer overrides the fill-reducing ordering strategy.
func WithOrderer(o order.Orderer) Option {
	return func(cfg *Config) {
		if o != nil {
			cfg.Orderer = o
		}
	}
}

// WithHeuristic selects the supernode relaxation criterion.
func WithHeuristic(h Heuristic) Option {
	return func(cfg *Config) {
		cfg.Heuristic = h
	}
}

// WithRelaxConfig overrides the relaxation tuning constants.
func WithRelaxConfig(rc supernode.Config) Option {
	return func(cfg *Config) {
		cfg.Relax = rc
	}
}

// WithDebugCheck enables the dense cross-check after Run assembles the
// result, seeded by seed for reproducibility.
func WithDebugCheck(seed int64) Option {
	return func(cfg *Config) {
		cfg.DebugCheck = true
		cfg.DebugSeed = seed
	}
}

// newConfig applies opts over DefaultConfig.
func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
