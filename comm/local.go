// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"fmt"
	"sync/atomic"
)

// localQueueDepth bounds the in-flight messages per ordered pair of ranks.
// Collectives keep at most one message per pair in flight, so any depth >= 1
// is deadlock-free; extra room only decouples senders from receivers.
const localQueueDepth = 16

// envelope is one in-process message.
type envelope struct {
	tag     int
	payload []byte
}

// localWorld is the shared wiring of an in-process group:
// links[src][dst] carries messages from src to dst in FIFO order.
type localWorld struct {
	size  int
	links [][]chan envelope
}

// LocalTransport is one rank's endpoint in an in-process group. Ranks run as
// goroutines; payloads are copied on Send so no memory is shared across ranks.
type LocalTransport struct {
	rank   int
	w      *localWorld
	closed atomic.Bool
}

var _ Transport = (*LocalTransport)(nil)

// NewLocalWorld wires size endpoints to each other with buffered channels.
//
// Errors:
//   - ErrInvalidSize when size < 1.
//
// Complexity:
//   - Time/Space O(size²) channels.
func NewLocalWorld(size int) ([]*LocalTransport, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewLocalWorld(%d): %w", size, ErrInvalidSize)
	}
	w := &localWorld{size: size, links: make([][]chan envelope, size)}
	for src := range w.links {
		w.links[src] = make([]chan envelope, size)
		for dst := range w.links[src] {
			if src != dst {
				w.links[src][dst] = make(chan envelope, localQueueDepth)
			}
		}
	}

	eps := make([]*LocalTransport, size)
	for r := range eps {
		eps[r] = &LocalTransport{rank: r, w: w}
	}

	return eps, nil
}

// Rank returns this endpoint's rank.
func (t *LocalTransport) Rank() int { return t.rank }

// Size returns the group size.
func (t *LocalTransport) Size() int { return t.w.size }

// Send copies payload and enqueues it for dst.
func (t *LocalTransport) Send(ctx context.Context, dst, tag int, payload []byte) error {
	if t.closed.Load() {
		return ErrClosed
	}
	if err := CheckPeer(t.rank, dst, t.w.size); err != nil {
		return err
	}
	env := envelope{tag: tag, payload: append([]byte(nil), payload...)}

	select {
	case t.w.links[t.rank][dst] <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recv dequeues the next message from src and checks its tag.
func (t *LocalTransport) Recv(ctx context.Context, src, tag int) ([]byte, error) {
	if t.closed.Load() {
		return nil, ErrClosed
	}
	if err := CheckPeer(t.rank, src, t.w.size); err != nil {
		return nil, err
	}

	select {
	case env := <-t.w.links[src][t.rank]:
		if env.tag != tag {
			return nil, fmt.Errorf("from %d: got tag %d, want %d: %w", src, env.tag, tag, ErrTagMismatch)
		}
		return env.payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close marks the endpoint closed; later Send/Recv return ErrClosed.
// Messages already queued to peers stay deliverable.
func (t *LocalTransport) Close() error {
	t.closed.Store(true)
	return nil
}
