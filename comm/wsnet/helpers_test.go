// SPDX-License-Identifier: MIT
package wsnet_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/katalvlaran/lvmpi/comm"
	"github.com/katalvlaran/lvmpi/comm/wsnet"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testTimeout = 10 * time.Second

// freeAddrs reserves n loopback ports and releases them for Dial to rebind.
func freeAddrs(t *testing.T, n int) []string {
	t.Helper()
	addrs := make([]string, n)
	for i := range addrs {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addrs[i] = ln.Addr().String()
		require.NoError(t, ln.Close())
	}
	return addrs
}

// dialMesh brings up one Transport per peer concurrently, as separate
// processes would, and closes them when the test ends.
func dialMesh(t *testing.T, peers []string) []*wsnet.Transport {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	ts := make([]*wsnet.Transport, len(peers))
	g, gctx := errgroup.WithContext(ctx)
	for r := range peers {
		g.Go(func() error {
			tr, err := wsnet.Dial(gctx, r, peers, wsnet.WithDialInterval(10*time.Millisecond))
			ts[r] = tr
			return err
		})
	}
	require.NoError(t, g.Wait())
	t.Cleanup(func() {
		for _, tr := range ts {
			_ = tr.Close()
		}
	})
	return ts
}

// runMesh runs fn on every rank of a fresh mesh of the given size.
func runMesh(t *testing.T, size int, fn comm.RankFunc) {
	t.Helper()
	ts := dialMesh(t, freeAddrs(t, size))
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, tr := range ts {
		g.Go(func() error {
			c, err := comm.New(tr)
			if err != nil {
				return err
			}
			return fn(gctx, c)
		})
	}
	require.NoError(t, g.Wait())
}
