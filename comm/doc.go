// SPDX-License-Identifier: MIT

// Package comm is the collective-communication substrate shared by the
// distributed engines.
//
// A process group is a set of ranks 0..size-1. Each rank owns a Comm, an
// immutable value carrying its identity (rank, size, role) and a Transport
// that moves tagged byte messages between ordered pairs of ranks. On top of
// that point-to-point layer Comm provides the collectives:
//
//   - Broadcast: replicate the root's buffer on every rank.
//   - Scatterv:  hand each rank its own contiguous chunk of the root's buffer,
//     as described by a Layout (see partition.Table).
//   - Gatherv:   the inverse; the root places every chunk at its layout offset.
//   - Exchange:  one combined send+receive with either side optionally NoPeer.
//
// All collectives are synchronizing and must be entered by every rank in the
// same order. Exchange runs its send and its receive concurrently, so two
// ranks exchanging with each other can never deadlock on ordering.
//
// Two runtimes bootstrap groups:
//
//   - RunLocal: every rank is a goroutine wired through in-process channels.
//   - package comm/wsnet: every rank is an OS process; links are websockets.
//
// The first failing rank aborts the group (total-failure model): RunLocal
// cancels the shared context, and blocked operations return the context error.
package comm
