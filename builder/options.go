// SPDX-License-Identifier: MIT
// Package: lvmpi/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// Option customizes a constructor by mutating a builderConfig instance before
// the matrix is generated.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the per-entry generator. Panics on nil.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithMaxValue draws entries uniformly from [-limit, limit].
// Panics if limit < 0.
func WithMaxValue(limit int32) Option {
	return WithValueFn(UniformValueFn(limit))
}
