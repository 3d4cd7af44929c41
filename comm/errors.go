// SPDX-License-Identifier: MIT
// Package: lvmpi/comm
//
// errors.go — sentinel errors for the comm package.
//
// Callers MUST use errors.Is; transports in other packages return these same
// sentinels so collective code stays transport-agnostic.

package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a group with fewer than one rank.
	ErrInvalidSize = errors.New("comm: group size must be >= 1")

	// ErrInvalidRank indicates a rank (peer, root or self) outside [0,size),
	// or a point-to-point call addressed to the caller itself.
	ErrInvalidRank = errors.New("comm: invalid rank")

	// ErrTagMismatch indicates the next message from a peer carries a different
	// tag than expected: the ranks entered different collectives.
	ErrTagMismatch = errors.New("comm: message tag mismatch")

	// ErrBufferSize indicates a buffer whose length disagrees with the
	// collective's contract (broadcast length, layout count or total).
	ErrBufferSize = errors.New("comm: buffer size mismatch")

	// ErrClosed indicates an operation on a closed transport.
	ErrClosed = errors.New("comm: transport closed")

	// ErrNilTransport indicates New was given a nil Transport.
	ErrNilTransport = errors.New("comm: nil transport")

	// ErrNilLayout indicates a variable scatter/gather without a Layout.
	ErrNilLayout = errors.New("comm: nil layout")
)

// Operation tags for wrapped errors.
const (
	opBroadcast = "Broadcast"
	opScatterv  = "Scatterv"
	opGatherv   = "Gatherv"
	opExchange  = "Exchange"
	opNew       = "New"
)

// commErrorf wraps err as "<op>[rank=<r>]: <err>".
func commErrorf(op string, rank int, err error) error {
	return fmt.Errorf("%s[rank=%d]: %w", op, rank, err)
}
