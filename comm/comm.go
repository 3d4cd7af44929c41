// SPDX-License-Identifier: MIT

package comm

import (
	"io"
	"log/slog"
)

// Role distinguishes the coordinating rank from the others. Components state
// which roles they expect instead of scattering rank == 0 checks.
type Role int

const (
	// Worker is every rank other than Root.
	Worker Role = iota
	// Coordinator is Root: it owns full matrices and reports results.
	Coordinator
)

// String returns "coordinator" or "worker".
func (r Role) String() string {
	if r == Coordinator {
		return "coordinator"
	}

	return "worker"
}

// Comm is one rank's immutable handle on its group.
// It is safe to pass by pointer to every component call; no method mutates it.
type Comm struct {
	t    Transport
	rank int
	size int
	log  *slog.Logger
}

// Option configures a Comm.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the base logger; New adds a "rank" attribute.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("comm: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// discardLogger drops everything; the default when no logger is configured.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New wraps t in a Comm.
//
// Errors:
//   - ErrNilTransport, ErrInvalidSize (size < 1), ErrInvalidRank (rank ∉ [0,size)).
func New(t Transport, opts ...Option) (*Comm, error) {
	if t == nil {
		return nil, commErrorf(opNew, -1, ErrNilTransport)
	}
	rank, size := t.Rank(), t.Size()
	if size < 1 {
		return nil, commErrorf(opNew, rank, ErrInvalidSize)
	}
	if rank < 0 || rank >= size {
		return nil, commErrorf(opNew, rank, ErrInvalidRank)
	}

	o := options{logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Comm{
		t:    t,
		rank: rank,
		size: size,
		log:  o.logger.With(slog.Int("rank", rank), slog.Int("size", size)),
	}, nil
}

// Rank returns this process's rank in [0, Size()).
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of ranks in the group.
func (c *Comm) Size() int { return c.size }

// Role returns Coordinator for Root and Worker otherwise.
func (c *Comm) Role() Role {
	if c.rank == Root {
		return Coordinator
	}

	return Worker
}

// IsCoordinator reports whether this rank is Root.
func (c *Comm) IsCoordinator() bool { return c.Role() == Coordinator }

// Logger returns the rank-scoped logger.
func (c *Comm) Logger() *slog.Logger { return c.log }

// Transport returns the underlying point-to-point transport.
func (c *Comm) Transport() Transport { return c.t }

// checkRoot validates a collective root.
func (c *Comm) checkRoot(root int) error {
	if root < 0 || root >= c.size {
		return ErrInvalidRank
	}

	return nil
}
