// SPDX-License-Identifier: MIT
// Package: lvmpi/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng     = nil                          (must be seeded for uniform draws)
//   • valueFn = UniformValueFn(DefaultMaxValue)

package builder

import "math/rand"

// DefaultMaxValue bounds generated entries when no value option is given.
const DefaultMaxValue int32 = 10

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng     *rand.Rand // nil means "no randomness"
	valueFn ValueFn    // entry generator, called once per element in row-major order
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		valueFn: UniformValueFn(DefaultMaxValue),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
