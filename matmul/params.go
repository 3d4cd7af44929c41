// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/lvmpi/builder"
	"github.com/katalvlaran/lvmpi/matrix"
)

// Params are the run parameters every rank must agree on.
type Params struct {
	N        int   // matrix dimension, > 0
	SeedA    int64 // generator seed for A
	SeedB    int64 // generator seed for B
	MaxValue int32 // entries lie in [−MaxValue, MaxValue]
}

// Validate reports ErrInvalidParams for a non-positive N or negative MaxValue.
func (p Params) Validate() error {
	if p.N <= 0 {
		return fmt.Errorf("N=%d: %w", p.N, ErrInvalidParams)
	}
	if p.MaxValue < 0 {
		return fmt.Errorf("maxValue=%d: %w", p.MaxValue, ErrInvalidParams)
	}

	return nil
}

// Generator produces the n×n matrix for one seed. It must be deterministic:
// the same arguments yield the same matrix.
type Generator func(seed int64, maxValue int32, n int) (*matrix.Dense, error)

// Option configures Multiply and Sequential.
type Option func(*options)

type options struct {
	gen Generator
}

// WithGenerator replaces builder.Generate. Panics on nil.
func WithGenerator(g Generator) Option {
	if g == nil {
		panic("matmul: WithGenerator(nil)")
	}
	return func(o *options) { o.gen = g }
}

func newOptions(opts []Option) options {
	o := options{gen: builder.Generate}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// generate runs the generator and checks the shape it returned.
func (o options) generate(seed int64, p Params) (*matrix.Dense, error) {
	m, err := o.gen(seed, p.MaxValue, p.N)
	if err != nil {
		return nil, fmt.Errorf("seed %d: %v: %w", seed, err, ErrGenerator)
	}
	if m == nil || m.Rows() != p.N || m.Cols() != p.N {
		return nil, fmt.Errorf("seed %d: want %d×%d matrix: %w", seed, p.N, p.N, ErrGenerator)
	}

	return m, nil
}
