// SPDX-License-Identifier: MIT

package matmul

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmpi/comm"
	"github.com/katalvlaran/lvmpi/matrix"
	"github.com/katalvlaran/lvmpi/partition"
)

// Result is one rank's outcome of Multiply.
type Result struct {
	// Checksum is Σ C[i][j]; meaningful on the coordinator only.
	Checksum int64
	// C is the full product on the coordinator and nil elsewhere.
	C *matrix.Dense
	// Rows is the row range of C this rank computed.
	Rows partition.Range
}

// Multiply runs the distributed product on c's group. Every rank must call it
// with the same Params.
//
// Implementation:
//   - Stage 1: validate p locally, before any collective.
//   - Stage 2: coordinator generates A and B; other ranks allocate B.
//   - Stage 3: Broadcast B from comm.Root.
//   - Stage 4: build the partition table; Scatterv A's row blocks.
//   - Stage 5: multiply the local block by B.
//   - Stage 6: Gatherv the local blocks of C onto the coordinator.
//   - Stage 7: coordinator sums C into an int64 checksum.
//
// Behavior highlights:
//   - Ranks beyond N own zero rows; they still take part in every collective
//     with empty blocks.
//   - A generator failure on the coordinator is returned there; the runtime
//     is expected to abort the peers waiting in Broadcast.
//
// Errors:
//   - ErrInvalidParams, ErrGenerator, and collective errors (wrapped).
//
// Complexity:
//   - Compute O(N³/size) per rank; traffic O(N²·size) for the broadcast of B
//     plus O(N²) for scatter and gather.
func Multiply(ctx context.Context, c *comm.Comm, p Params, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}
	o := newOptions(opts)
	log := c.Logger()
	n := p.N

	var a, b *matrix.Dense
	var err error
	if c.IsCoordinator() {
		if a, err = o.generate(p.SeedA, p); err != nil {
			return Result{}, matmulErrorf(opMultiply, err)
		}
		if b, err = o.generate(p.SeedB, p); err != nil {
			return Result{}, matmulErrorf(opMultiply, err)
		}
		log.Debug("generated inputs", "n", n, "seed_a", p.SeedA, "seed_b", p.SeedB)
	} else if b, err = matrix.NewDense(n, n); err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}

	if err = c.Broadcast(ctx, comm.Root, b.Data()); err != nil {
		return Result{}, matmulErrorf(opMultiply, fmt.Errorf("broadcast B: %w", err))
	}

	tb, err := partition.BuildTable(n, c.Size())
	if err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}
	var send []int32
	if c.IsCoordinator() {
		send = a.Data()
	}
	blockA, err := c.Scatterv(ctx, comm.Root, send, tb)
	if err != nil {
		return Result{}, matmulErrorf(opMultiply, fmt.Errorf("scatter A: %w", err))
	}

	rows := tb.Range(c.Rank())
	localA, err := matrix.NewDenseFrom(rows.Count, n, blockA)
	if err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}
	localC, err := matrix.Mul(localA, b)
	if err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}
	log.Debug("local block done", "first_row", rows.First, "rows", rows.Count)

	full, err := c.Gatherv(ctx, comm.Root, localC.Data(), tb)
	if err != nil {
		return Result{}, matmulErrorf(opMultiply, fmt.Errorf("gather C: %w", err))
	}

	res := Result{Rows: rows}
	if !c.IsCoordinator() {
		return res, nil
	}
	if res.C, err = matrix.NewDenseFrom(n, n, full); err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}
	if res.Checksum, err = matrix.Checksum(res.C); err != nil {
		return Result{}, matmulErrorf(opMultiply, err)
	}
	log.Info("matmul done", "n", n, "checksum", res.Checksum)

	return res, nil
}

// Sequential computes the same product in one process with the same generator
// and kernel. It is the reference every distributed run must reproduce.
func Sequential(p Params, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, matmulErrorf(opSequential, err)
	}
	o := newOptions(opts)

	a, err := o.generate(p.SeedA, p)
	if err != nil {
		return Result{}, matmulErrorf(opSequential, err)
	}
	b, err := o.generate(p.SeedB, p)
	if err != nil {
		return Result{}, matmulErrorf(opSequential, err)
	}
	cm, err := matrix.Mul(a, b)
	if err != nil {
		return Result{}, matmulErrorf(opSequential, err)
	}
	sum, err := matrix.Checksum(cm)
	if err != nil {
		return Result{}, matmulErrorf(opSequential, err)
	}

	return Result{Checksum: sum, C: cm, Rows: partition.Range{First: 0, Count: p.N}}, nil
}
