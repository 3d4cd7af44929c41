// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RankFunc is the body executed once by every rank of a group.
type RankFunc func(ctx context.Context, c *Comm) error

// RunLocal runs fn on size in-process ranks and waits for all of them.
//
// Implementation:
//   - Stage 1: wire a local world of size endpoints.
//   - Stage 2: start one goroutine per rank under errgroup.WithContext.
//   - Stage 3: wait, then close every endpoint.
//
// Behavior highlights:
//   - The first rank error cancels the context seen by all ranks, so peers
//     blocked in a collective unwind instead of hanging (total-failure model).
//   - The returned error is the first failure, prefixed with its rank.
func RunLocal(ctx context.Context, size int, fn RankFunc, opts ...Option) error {
	eps, err := NewLocalWorld(size)
	if err != nil {
		return err
	}
	defer func() {
		for _, ep := range eps {
			_ = ep.Close()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for _, ep := range eps {
		g.Go(func() error {
			c, err := New(ep, opts...)
			if err != nil {
				return err
			}
			if err = fn(gctx, c); err != nil {
				return fmt.Errorf("rank %d: %w", ep.Rank(), err)
			}
			return nil
		})
	}

	return g.Wait()
}
