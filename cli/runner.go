// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvmpi/comm"
	"github.com/katalvlaran/lvmpi/comm/wsnet"
	"github.com/katalvlaran/lvmpi/config"
)

// lockedWriter serializes whole writes from concurrent ranks so lines do not
// tear; their relative order is unspecified.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}

// runGroup executes fn on every rank this process hosts.
func runGroup(ctx context.Context, cfg config.Config, log *slog.Logger, fn comm.RankFunc) error {
	if cfg.Mode() == config.Local {
		log.Debug("starting local group", "procs", cfg.Procs)
		return comm.RunLocal(ctx, cfg.Procs, fn, comm.WithLogger(log))
	}

	log.Debug("joining network group", "rank", cfg.Rank, "size", len(cfg.Peers))
	dctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	tr, err := wsnet.Dial(dctx, cfg.Rank, cfg.Peers, wsnet.WithLogger(log))
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := tr.Close(); cerr != nil {
			log.Debug("close transport", "err", cerr)
		}
	}()

	c, err := comm.New(tr, comm.WithLogger(log))
	if err != nil {
		return err
	}
	if err = fn(ctx, c); err != nil {
		return fmt.Errorf("rank %d: %w", cfg.Rank, err)
	}

	return nil
}
