// Package matrix offers the dense integer matrix and the local multiply kernel
// used by the distributed engines.
//
// The matrix package provides:
//
//   - Dense: a row-major int32 matrix whose flat buffer can be handed to the
//     collectives in package comm without copying or reshaping.
//   - Mul: the sequential kernel C = A × B for a row-block A (r×n) and a full
//     right operand B (n×c). Pure, deterministic, no communication.
//   - Checksum: the sum of all elements in a 64-bit accumulator.
//
// Arithmetic follows 32-bit two's-complement semantics: products and partial
// sums wrap around instead of failing. Only Checksum widens to int64.
//
// Zero-row (and zero-column) matrices are legal values: a rank that owns no
// rows still multiplies an empty 0×n block and contributes an empty result.
package matrix
