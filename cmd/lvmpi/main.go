// SPDX-License-Identifier: MIT

// Command lvmpi runs the distributed matrix multiply and prefix sum programs.
//
// Usage:
//
//	lvmpi matmul N seedA seedB maxValue [--procs P]
//	lvmpi prefixsum [--procs P]
//
// Network mode starts one process per rank with the same peer list:
//
//	lvmpi prefixsum --rank 0 --peers host0:7070,host1:7070
//	lvmpi prefixsum --rank 1 --peers host0:7070,host1:7070
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvmpi/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
