// SPDX-License-Identifier: MIT
// Package: lvmpi/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Option constructors panic on meaningless inputs; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative matrix dimension.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic value function ran without a
// *rand.Rand in the resolved config (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// Method tokens used as error context.
const (
	MethodRandomDense = "RandomDense"
	MethodGenerate    = "Generate"
)

// builderErrorf wraps err as "<method>: <err>" keeping it matchable with errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
