// Package lvmpi is a small SPMD toolkit: a fixed group of ranks that talk only
// through collectives, and two programs built on it.
//
// 🚀 What is inside?
//
//	• Row-block matrix multiply: scatter A by rows, broadcast B, gather C,
//	  report checksum(C) on the coordinator.
//	• Recursive-doubling prefix sum: ⌈log2 P⌉ rounds of paired exchanges.
//	• Two runtimes for the same code: goroutine ranks in one process, or one
//	  process per rank over a WebSocket mesh.
//
// Under the hood, everything is organized in subpackages:
//
//	partition/  — which rows each rank owns (counts & offsets)
//	matrix/     — dense int32 matrices and the local multiply kernel
//	builder/    — deterministic seeded matrix generation
//	comm/       — Comm handle, collectives, in-process transport & runtime
//	comm/wsnet/ — WebSocket full-mesh transport
//	matmul/     — distributed multiply engine
//	prefix/     — distributed inclusive scan
//	config/     — defaults, YAML file and flags
//	logx/       — slog logger construction
//	cli/        — cobra commands behind cmd/lvmpi
//
// Quick ASCII example (N = 5, P = 3):
//
//	rank 0 │ row  0   │
//	rank 1 │ rows 1,2 │   A (scattered)  ×  B (broadcast)
//	rank 2 │ rows 3,4 │
//
//	go install github.com/katalvlaran/lvmpi/cmd/lvmpi@latest
package lvmpi
