// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/lvmpi/matrix"
)

// RandomDense returns an n×n matrix whose entries are drawn in row-major order
// from the configured ValueFn.
//
// Implementation:
//   - Stage 1: validate n >= 0 (ErrBadSize).
//   - Stage 2: resolve options; allocate n×n.
//   - Stage 3: fill element i*n+j with valueFn(rng) for i, then j ascending.
//
// Determinism:
//   - Fixed fill order; identical (seed, options, n) ⇒ identical matrix.
//
// Errors:
//   - ErrBadSize, ErrNeedRandSource (stochastic ValueFn without seed).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func RandomDense(n int, opts ...Option) (*matrix.Dense, error) {
	if n < 0 {
		return nil, builderErrorf(MethodRandomDense, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodRandomDense, err)
	}
	data := m.Data()
	var ok bool
	for i := range data {
		if data[i], ok = cfg.valueFn(cfg.rng); !ok {
			return nil, builderErrorf(MethodRandomDense, ErrNeedRandSource)
		}
	}

	return m, nil
}

// Generate is the deterministic generator collaborator: an n×n matrix with
// entries uniform in [-maxValue, maxValue] from a source seeded with seed.
//
// Errors:
//   - ErrBadSize (n < 0 or maxValue < 0).
func Generate(seed int64, maxValue int32, n int) (*matrix.Dense, error) {
	if maxValue < 0 {
		return nil, builderErrorf(MethodGenerate, ErrBadSize)
	}
	m, err := RandomDense(n, WithSeed(seed), WithMaxValue(maxValue))
	if err != nil {
		return nil, builderErrorf(MethodGenerate, err)
	}

	return m, nil
}
