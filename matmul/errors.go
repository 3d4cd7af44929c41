// SPDX-License-Identifier: MIT

package matmul

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams indicates N <= 0 or a negative MaxValue.
	ErrInvalidParams = errors.New("matmul: invalid parameters")

	// ErrGenerator indicates the generator failed or returned a matrix that is
	// not N×N.
	ErrGenerator = errors.New("matmul: generator failed")
)

const (
	opMultiply   = "matmul.Multiply"
	opSequential = "matmul.Sequential"
)

func matmulErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
