// SPDX-License-Identifier: MIT

package prefix

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvmpi/comm"
)

// RoundHook observes a rank's running sum after each round.
// round counts from 0; step is 2^round.
type RoundHook func(round, step int, sum int64)

// Option configures InclusiveSum.
type Option func(*options)

type options struct {
	hook RoundHook
}

// WithRoundHook installs h; it runs on the calling rank's goroutine after
// every round. Panics on nil.
func WithRoundHook(h RoundHook) Option {
	if h == nil {
		panic("prefix: WithRoundHook(nil)")
	}
	return func(o *options) { o.hook = h }
}

// Rounds returns the number of doubling rounds for a group of size ranks:
// ⌈log2 size⌉, and 0 for size <= 1.
func Rounds(size int) int {
	if size <= 1 {
		return 0
	}

	return bits.Len(uint(size - 1))
}

// InclusiveSum returns value summed with the values of all lower ranks.
//
// Implementation:
//   - sum starts at value.
//   - For step = 1, 2, 4, … while step < size: Exchange(sum) with
//     sendTo = rank+step (NoPeer past the end) and
//     recvFrom = rank−step (NoPeer below 0); add what was received.
//
// Behavior highlights:
//   - After round k rank r holds Σ values[max(0, r−2^(k+1)+1) .. r].
//   - The value sent in a round is the sum BEFORE that round's addition;
//     Exchange completes both halves before the sum changes.
//   - size == 1 returns value without touching the transport.
//
// Errors:
//   - Exchange failures, wrapped with the failing round.
//
// Complexity:
//   - ⌈log2 size⌉ rounds, one int64 sent and received per round.
func InclusiveSum(ctx context.Context, c *comm.Comm, value int64, opts ...Option) (int64, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rank, size := c.Rank(), c.Size()
	sum := value
	for round, step := 0, 1; step < size; round, step = round+1, step<<1 {
		sendTo, recvFrom := rank+step, rank-step
		if sendTo >= size {
			sendTo = comm.NoPeer
		}
		if recvFrom < 0 {
			recvFrom = comm.NoPeer
		}

		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("prefix: round %d: %w", round, err)
		}
		got, err := c.Exchange(ctx, sendTo, recvFrom, sum)
		if err != nil {
			return 0, fmt.Errorf("prefix: round %d (step %d): %w", round, step, err)
		}
		if recvFrom != comm.NoPeer {
			sum += got
		}
		c.Logger().Debug("prefix round", "round", round, "step", step, "sum", sum)
		if o.hook != nil {
			o.hook(round, step, sum)
		}
	}

	return sum, nil
}

// Sequential is the single-process reference: out[r] = values[0] + … + values[r].
func Sequential(values []int64) []int64 {
	out := make([]int64, len(values))
	var acc int64
	for i, v := range values {
		acc += v
		out[i] = acc
	}

	return out
}
