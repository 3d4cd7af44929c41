// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmpi/comm"
	"github.com/katalvlaran/lvmpi/matmul"
	"github.com/katalvlaran/lvmpi/prefix"
)

func (a *app) matmulCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matmul N seedA seedB maxValue",
		Short: "Multiply two generated N×N matrices and print checksum(C)",
		Example: `  lvmpi matmul 512 1 2 10 --procs 8
  lvmpi matmul 3 1 2 10 --rank 0 --peers :7070,:7071`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseMatmulArgs(args)
			if err != nil {
				return err
			}
			return asRuntime(runGroup(cmd.Context(), a.cfg, a.log, func(ctx context.Context, c *comm.Comm) error {
				res, err := matmul.Multiply(ctx, c, p)
				if err != nil {
					return err
				}
				if c.IsCoordinator() {
					a.stdout.Printf("checksum(C) = %d\n", res.Checksum)
				}
				return nil
			}))
		},
	}
}

// parseMatmulArgs converts the positional arguments; every failure is a usage
// error reported before any rank starts.
func parseMatmulArgs(args []string) (matmul.Params, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return matmul.Params{}, fmt.Errorf("N %q: %w", args[0], err)
	}
	seedA, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return matmul.Params{}, fmt.Errorf("seedA %q: %w", args[1], err)
	}
	seedB, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return matmul.Params{}, fmt.Errorf("seedB %q: %w", args[2], err)
	}
	maxValue, err := strconv.ParseInt(args[3], 10, 32)
	if err != nil {
		return matmul.Params{}, fmt.Errorf("maxValue %q: %w", args[3], err)
	}

	p := matmul.Params{N: n, SeedA: seedA, SeedB: seedB, MaxValue: int32(maxValue)}
	if err = p.Validate(); err != nil {
		return matmul.Params{}, err
	}

	return p, nil
}

func (a *app) prefixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixsum",
		Short: "Inclusive scan of x = rank across the group",
		Long: `Every rank contributes its own rank number and prints
"rank=<r> x=<r> prefix=<sum of 0..r>". Lines from different ranks may
appear in any order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return asRuntime(runGroup(cmd.Context(), a.cfg, a.log, func(ctx context.Context, c *comm.Comm) error {
				x := int64(c.Rank())
				s, err := prefix.InclusiveSum(ctx, c, x)
				if err != nil {
					return err
				}
				a.stdout.Printf("rank=%d x=%d prefix=%d\n", c.Rank(), x, s)
				return nil
			}))
		},
	}
}
