// SPDX-License-Identifier: MIT

package comm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Message tags, one per collective. A mismatch on receipt means two ranks
// entered different collectives.
const (
	tagBroadcast = 1
	tagScatter   = 2
	tagGather    = 3
	tagExchange  = 4
)

// Broadcast replicates root's buf on every rank.
//
// Implementation:
//   - Root: encode buf once, send it to every other rank in rank order.
//   - Others: receive from root and decode into buf in place.
//
// Behavior highlights:
//   - Every rank passes a buffer of the same length; a received payload of a
//     different length fails with ErrBufferSize instead of truncating.
//   - size == 1 moves no data.
//
// Errors:
//   - ErrInvalidRank (root), ErrBufferSize, transport and context errors.
//
// Complexity:
//   - Root sends size−1 messages of len(buf) elements.
func (c *Comm) Broadcast(ctx context.Context, root int, buf []int32) error {
	if err := c.checkRoot(root); err != nil {
		return commErrorf(opBroadcast, c.rank, err)
	}
	c.log.Debug("broadcast", "root", root, "elems", len(buf))

	if c.rank == root {
		payload := encodeInt32s(buf)
		for dst := 0; dst < c.size; dst++ {
			if dst == root {
				continue
			}
			if err := c.t.Send(ctx, dst, tagBroadcast, payload); err != nil {
				return commErrorf(opBroadcast, c.rank, fmt.Errorf("send to %d: %w", dst, err))
			}
		}

		return nil
	}

	p, err := c.t.Recv(ctx, root, tagBroadcast)
	if err != nil {
		return commErrorf(opBroadcast, c.rank, fmt.Errorf("recv from %d: %w", root, err))
	}
	if err = decodeInt32s(buf, p); err != nil {
		return commErrorf(opBroadcast, c.rank, err)
	}

	return nil
}

// Scatterv distributes root's send buffer: rank r receives exactly
// layout.Count(r) elements starting at layout.Offset(r).
//
// Implementation:
//   - Root: check len(send) >= layout.Total(); send each other rank its chunk;
//     copy its own chunk locally (root is both source and destination).
//   - Others: send is ignored and may be nil; receive one chunk from root.
//
// Behavior highlights:
//   - Zero-element chunks are still sent and received, so every rank takes
//     part in every scatter even when it owns no rows.
//   - The returned slice is freshly allocated and owned by the caller.
//
// Errors:
//   - ErrInvalidRank (root), ErrNilLayout, ErrBufferSize, transport errors.
func (c *Comm) Scatterv(ctx context.Context, root int, send []int32, layout Layout) ([]int32, error) {
	if err := c.checkRoot(root); err != nil {
		return nil, commErrorf(opScatterv, c.rank, err)
	}
	if layout == nil {
		return nil, commErrorf(opScatterv, c.rank, ErrNilLayout)
	}
	c.log.Debug("scatterv", "root", root, "count", layout.Count(c.rank))

	if c.rank == root {
		if len(send) < layout.Total() {
			return nil, commErrorf(opScatterv, c.rank,
				fmt.Errorf("send has %d elements, layout needs %d: %w", len(send), layout.Total(), ErrBufferSize))
		}
		var off, cnt int
		for dst := 0; dst < c.size; dst++ {
			if dst == root {
				continue
			}
			off, cnt = layout.Offset(dst), layout.Count(dst)
			if err := c.t.Send(ctx, dst, tagScatter, encodeInt32s(send[off:off+cnt])); err != nil {
				return nil, commErrorf(opScatterv, c.rank, fmt.Errorf("send to %d: %w", dst, err))
			}
		}
		off, cnt = layout.Offset(root), layout.Count(root)
		own := make([]int32, cnt)
		copy(own, send[off:off+cnt])

		return own, nil
	}

	p, err := c.t.Recv(ctx, root, tagScatter)
	if err != nil {
		return nil, commErrorf(opScatterv, c.rank, fmt.Errorf("recv from %d: %w", root, err))
	}
	local := make([]int32, layout.Count(c.rank))
	if err = decodeInt32s(local, p); err != nil {
		return nil, commErrorf(opScatterv, c.rank, err)
	}

	return local, nil
}

// Gatherv reassembles every rank's chunk on root: rank r's local buffer lands at
// layout.Offset(r). Non-root ranks return a nil buffer.
//
// Implementation:
//   - Others: check len(local) == layout.Count(rank), send it to root.
//   - Root: allocate layout.Total() elements, copy its own chunk, then receive
//     from all other ranks concurrently, each receiver writing only its
//     sender's region.
//
// Behavior highlights:
//   - Placement depends on the layout only, never on arrival order.
//
// Errors:
//   - ErrInvalidRank (root), ErrNilLayout, ErrBufferSize, transport errors.
func (c *Comm) Gatherv(ctx context.Context, root int, local []int32, layout Layout) ([]int32, error) {
	if err := c.checkRoot(root); err != nil {
		return nil, commErrorf(opGatherv, c.rank, err)
	}
	if layout == nil {
		return nil, commErrorf(opGatherv, c.rank, ErrNilLayout)
	}
	if len(local) != layout.Count(c.rank) {
		return nil, commErrorf(opGatherv, c.rank,
			fmt.Errorf("local has %d elements, layout says %d: %w", len(local), layout.Count(c.rank), ErrBufferSize))
	}
	c.log.Debug("gatherv", "root", root, "count", len(local))

	if c.rank != root {
		if err := c.t.Send(ctx, root, tagGather, encodeInt32s(local)); err != nil {
			return nil, commErrorf(opGatherv, c.rank, fmt.Errorf("send to %d: %w", root, err))
		}

		return nil, nil
	}

	full := make([]int32, layout.Total())
	off := layout.Offset(root)
	copy(full[off:off+len(local)], local)

	g, gctx := errgroup.WithContext(ctx)
	for src := 0; src < c.size; src++ {
		if src == root {
			continue
		}
		g.Go(func() error {
			p, err := c.t.Recv(gctx, src, tagGather)
			if err != nil {
				return fmt.Errorf("recv from %d: %w", src, err)
			}
			o, n := layout.Offset(src), layout.Count(src)
			if err = decodeInt32s(full[o:o+n], p); err != nil {
				return fmt.Errorf("from %d: %w", src, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, commErrorf(opGatherv, c.rank, err)
	}

	return full, nil
}

// Exchange sends value to sendTo and receives one value from recvFrom as a
// single operation. Either peer may be NoPeer, which skips that half.
//
// Implementation:
//   - The send and the receive run concurrently in an errgroup and Exchange
//     returns when both halves are done. Neither half waits for the other to
//     start, so a pair of ranks that both send first cannot deadlock.
//
// Returns:
//   - the received value, or 0 when recvFrom is NoPeer.
//
// Errors:
//   - ErrInvalidRank (peer out of range or self), transport errors.
func (c *Comm) Exchange(ctx context.Context, sendTo, recvFrom int, value int64) (int64, error) {
	for _, peer := range [...]int{sendTo, recvFrom} {
		if peer == NoPeer {
			continue
		}
		if err := CheckPeer(c.rank, peer, c.size); err != nil {
			return 0, commErrorf(opExchange, c.rank, fmt.Errorf("peer %d: %w", peer, err))
		}
	}
	c.log.Debug("exchange", "send_to", sendTo, "recv_from", recvFrom)

	var received int64
	g, gctx := errgroup.WithContext(ctx)
	if sendTo != NoPeer {
		g.Go(func() error {
			if err := c.t.Send(gctx, sendTo, tagExchange, encodeInt64(value)); err != nil {
				return fmt.Errorf("send to %d: %w", sendTo, err)
			}
			return nil
		})
	}
	if recvFrom != NoPeer {
		g.Go(func() error {
			p, err := c.t.Recv(gctx, recvFrom, tagExchange)
			if err != nil {
				return fmt.Errorf("recv from %d: %w", recvFrom, err)
			}
			received, err = decodeInt64(p)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, commErrorf(opExchange, c.rank, err)
	}

	return received, nil
}
