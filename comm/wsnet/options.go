// SPDX-License-Identifier: MIT

package wsnet

import (
	"io"
	"log/slog"
	"time"
)

// Path is the HTTP path every rank serves the WebSocket upgrade on.
const Path = "/lvmpi"

// Defaults for Dial.
const (
	DefaultDialInterval = 100 * time.Millisecond
	DefaultInboxDepth   = 16
)

// Option configures Dial.
type Option func(*config)

type config struct {
	dialInterval time.Duration
	inboxDepth   int
	log          *slog.Logger
}

func defaultConfig() config {
	return config{
		dialInterval: DefaultDialInterval,
		inboxDepth:   DefaultInboxDepth,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDialInterval sets the pause between attempts to reach a lower rank that
// is not listening yet. Panics if d <= 0.
func WithDialInterval(d time.Duration) Option {
	if d <= 0 {
		panic("wsnet: WithDialInterval(d<=0)")
	}
	return func(c *config) { c.dialInterval = d }
}

// WithInboxDepth sets how many frames per peer may wait unreceived before the
// link's reader stops pulling from the socket. Panics if n < 1.
func WithInboxDepth(n int) Option {
	if n < 1 {
		panic("wsnet: WithInboxDepth(n<1)")
	}
	return func(c *config) { c.inboxDepth = n }
}

// WithLogger sets the logger for link lifecycle events. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wsnet: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}
