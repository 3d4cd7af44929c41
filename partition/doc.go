// SPDX-License-Identifier: MIT

// Package partition splits the rows of an N×N row-major matrix into contiguous,
// load-balanced row-blocks, one per rank of a process group.
//
// The package provides:
//
//   - RowRange: the exact [first, first+count) row interval owned by a rank.
//   - Table: the per-rank (elementCount, elementOffset) layout consumed by the
//     variable-length scatter and gather collectives in package comm.
//
// Both are pure functions of (n, size). Every rank builds the identical Table
// locally; nothing about the layout ever crosses the wire.
//
// Row assignment uses the floor formula
//
//	first(r) = ⌊r·n/size⌋,  last(r) = ⌊(r+1)·n/size⌋ − 1
//
// so ranges are contiguous, pairwise disjoint and cover [0,n) exactly even when
// size does not divide n. When n < size some ranks own zero rows; such ranks are
// valid, trivial participants.
//
// Example (n=5, size=3):
//
//	rank 0: rows [0,1)   count=1
//	rank 1: rows [1,3)   count=2
//	rank 2: rows [3,5)   count=2
package partition
