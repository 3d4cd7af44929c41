// Package builder generates the deterministic input matrices of the
// distributed engines using "functional-options"-style configuration.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG and the value function.
//   - Entry distributions (ValueFn implementations):
//     – UniformValueFn:  uniform over the integers in [-limit, limit].
//     – ConstantValueFn: a fixed value.
//   - Constructors:
//     – RandomDense:  an n×n matrix filled row-major from the configured stream.
//     – Generate:     the (seed, maxValue, n) entry point used by package matmul.
//
// Guarantees:
//
//   - Determinism: the same seed and options always yield the same matrix,
//     across processes and runs (math/rand sources are stable for a seed).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation failures return sentinel errors (errors.Is).
package builder
