// SPDX-License-Identifier: MIT
// Package: lvmpi/partition
//
// errors.go — sentinel errors for the partition package.
//
// Callers MUST branch with errors.Is; messages are stable.

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when the process count is smaller than 1.
	ErrInvalidSize = errors.New("partition: size must be >= 1")

	// ErrInvalidRank is returned when rank is outside [0, size).
	ErrInvalidRank = errors.New("partition: rank out of range")

	// ErrNegativeDimension is returned when the matrix dimension is negative.
	ErrNegativeDimension = errors.New("partition: dimension must be >= 0")
)

// Operation tags used in wrapped errors.
const (
	opRowRange   = "RowRange"
	opBuildTable = "BuildTable"
)

// partitionErrorf wraps err as "<op>(n=<n>,size=<size>): <err>".
func partitionErrorf(op string, n, size int, err error) error {
	return fmt.Errorf("%s(n=%d,size=%d): %w", op, n, size, err)
}
