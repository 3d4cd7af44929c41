// SPDX-License-Identifier: MIT

package comm

import "context"

// NoPeer is the sentinel peer for Exchange meaning "no send" or "no receive".
const NoPeer = -1

// Root is the coordinating rank of every group built by this module.
const Root = 0

// Transport moves tagged messages between the ranks of one group.
//
// Contract:
//   - Messages from rank a to rank b are delivered in the order sent.
//   - Recv returns the next message from src; if its tag differs from the
//     expected one the transport returns ErrTagMismatch.
//   - Send may return before the peer has received, but after it returns the
//     caller may reuse payload.
//   - Send/Recv to the caller's own rank return ErrInvalidRank.
//   - Blocking calls honor ctx cancellation.
type Transport interface {
	Rank() int
	Size() int
	Send(ctx context.Context, dst, tag int, payload []byte) error
	Recv(ctx context.Context, src, tag int) ([]byte, error)
	Close() error
}

// Layout describes how a flat buffer splits into per-rank contiguous chunks.
// partition.Table implements it.
type Layout interface {
	Count(rank int) int  // elements owned by rank
	Offset(rank int) int // element displacement of rank's chunk
	Total() int          // length of the full buffer
}

// CheckPeer validates a point-to-point peer from the point of view of self.
// Transports share it so their error surfaces match.
func CheckPeer(self, peer, size int) error {
	if peer < 0 || peer >= size || peer == self {
		return ErrInvalidRank
	}

	return nil
}
