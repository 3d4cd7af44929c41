// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces one matrix entry from an optional *rand.Rand source.
// It must be deterministic for a given RNG state. A ValueFn that needs
// randomness reports ok=false when rng is nil.
type ValueFn func(rng *rand.Rand) (v int32, ok bool)

// UniformValueFn samples uniformly over the integers in [-limit, limit].
// Panics if limit < 0. limit == 0 always yields 0 and needs no RNG.
// Complexity: O(1).
func UniformValueFn(limit int32) ValueFn {
	if limit < 0 {
		panic(fmt.Sprintf("builder: UniformValueFn: limit must be >= 0, got %d", limit))
	}
	span := 2*int64(limit) + 1

	return func(rng *rand.Rand) (int32, bool) {
		if limit == 0 {
			return 0, true
		}
		if rng == nil {
			return 0, false
		}

		return int32(rng.Int63n(span) - int64(limit)), true
	}
}

// ConstantValueFn always yields v and never consumes randomness.
func ConstantValueFn(v int32) ValueFn {
	return func(_ *rand.Rand) (int32, bool) {
		return v, true
	}
}
