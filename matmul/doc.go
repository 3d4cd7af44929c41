// SPDX-License-Identifier: MIT

// Package matmul multiplies two generated N×N int32 matrices across a group of
// ranks by row-block decomposition and reports checksum(C) on the coordinator.
//
// Data flow (every rank runs the same sequence of collectives):
//
//	coordinator: A, B ← generator(seedA), generator(seedB)
//	all:         Broadcast(B)
//	all:         localA ← Scatterv(A, partition table)
//	all:         localC ← localA × B
//	all:         C ← Gatherv(localC)          (coordinator only)
//	coordinator: checksum(C) = Σ C[i][j]      (int64 accumulator)
//
// Row r of C is row r of A times B, so any rank order that keeps row order
// reproduces the single-process product bit for bit, including int32
// wraparound in the kernel.
package matmul
