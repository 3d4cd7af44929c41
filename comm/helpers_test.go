// SPDX-License-Identifier: MIT
package comm_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lvmpi/comm"
	"github.com/stretchr/testify/require"
)

// testTimeout bounds every group run so a protocol bug fails instead of hanging.
const testTimeout = 10 * time.Second

// runGroup runs fn on size local ranks and requires success.
func runGroup(t *testing.T, size int, fn comm.RankFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	require.NoError(t, comm.RunLocal(ctx, size, fn))
}

// perRank collects one value per rank from concurrent rank goroutines.
type perRank[T any] struct {
	mu   sync.Mutex
	vals map[int]T
}

func newPerRank[T any]() *perRank[T] { return &perRank[T]{vals: map[int]T{}} }

func (p *perRank[T]) put(rank int, v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vals[rank] = v
}

func (p *perRank[T]) get(rank int) T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vals[rank]
}

// rendezvous is a Transport whose Send blocks until the peer's Recv takes the
// message (unbuffered), the harshest setting for ordering deadlocks.
type rendezvous struct {
	rank, size int
	links      [][]chan rvMsg
}

type rvMsg struct {
	tag int
	p   []byte
}

func newRendezvousWorld(size int) []*rendezvous {
	links := make([][]chan rvMsg, size)
	for i := range links {
		links[i] = make([]chan rvMsg, size)
		for j := range links[i] {
			links[i][j] = make(chan rvMsg)
		}
	}
	out := make([]*rendezvous, size)
	for r := range out {
		out[r] = &rendezvous{rank: r, size: size, links: links}
	}
	return out
}

func (r *rendezvous) Rank() int { return r.rank }
func (r *rendezvous) Size() int { return r.size }
func (r *rendezvous) Close() error { return nil }

func (r *rendezvous) Send(ctx context.Context, dst, tag int, p []byte) error {
	if err := comm.CheckPeer(r.rank, dst, r.size); err != nil {
		return err
	}
	select {
	case r.links[r.rank][dst] <- rvMsg{tag: tag, p: append([]byte(nil), p...)}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *rendezvous) Recv(ctx context.Context, src, tag int) ([]byte, error) {
	if err := comm.CheckPeer(r.rank, src, r.size); err != nil {
		return nil, err
	}
	select {
	case m := <-r.links[src][r.rank]:
		if m.tag != tag {
			return nil, comm.ErrTagMismatch
		}
		return m.p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
