// SPDX-License-Identifier: MIT
package matmul_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmpi/comm"
	"github.com/katalvlaran/lvmpi/matmul"
	"github.com/katalvlaran/lvmpi/matrix"
)

// ExampleMultiply multiplies two constant 2×2 matrices on two ranks. Each
// entry of C is 1·2 + 1·2 = 4, so checksum(C) = 16.
func ExampleMultiply() {
	constant := func(seed int64, _ int32, n int) (*matrix.Dense, error) {
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		for i, d := 0, m.Data(); i < len(d); i++ {
			d[i] = int32(seed)
		}
		return m, nil
	}
	p := matmul.Params{N: 2, SeedA: 1, SeedB: 2, MaxValue: 2}

	err := comm.RunLocal(context.Background(), 2, func(ctx context.Context, c *comm.Comm) error {
		res, err := matmul.Multiply(ctx, c, p, matmul.WithGenerator(constant))
		if err != nil {
			return err
		}
		if c.IsCoordinator() {
			fmt.Printf("checksum(C) = %d\n", res.Checksum)
		}
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output: checksum(C) = 16
}
