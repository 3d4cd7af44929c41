// SPDX-License-Identifier: MIT

package wsnet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvmpi/comm"
)

const (
	opDial = "Dial"
	opSend = "Send"
	opRecv = "Recv"
)

// Transport is one rank's endpoint in a WebSocket mesh.
type Transport struct {
	rank, size int
	peers      []string
	cfg        config
	log        *slog.Logger

	srv      *http.Server
	upgrader websocket.Upgrader
	dialer   websocket.Dialer

	mu       sync.Mutex // guards links while the mesh is forming
	links    []*link
	accepted chan int
	done     chan struct{}
	closed   atomic.Bool
}

var _ comm.Transport = (*Transport)(nil)

// Dial joins the group described by peers as rank and blocks until a link to
// every other rank is up.
//
// Implementation:
//   - Stage 1: validate rank and peers; a group of one needs no network.
//   - Stage 2: listen on peers[rank] and serve the upgrade at Path, unless
//     this is the highest rank (nobody dials it).
//   - Stage 3: dial every lower rank in order, retrying every dial interval
//     until it answers or ctx ends, and exchange hellos.
//   - Stage 4: wait for every higher rank to dial in.
//
// Errors:
//   - comm.ErrInvalidSize (no peers), comm.ErrInvalidRank.
//   - ErrHandshake (peer list mismatch between processes).
//   - Listen errors; ctx errors joined with the last dial error.
func Dial(ctx context.Context, rank int, peers []string, opts ...Option) (*Transport, error) {
	size := len(peers)
	if size < 1 {
		return nil, wsErrorf(opDial, rank, comm.ErrInvalidSize)
	}
	if rank < 0 || rank >= size {
		return nil, wsErrorf(opDial, rank, comm.ErrInvalidRank)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Transport{
		rank:     rank,
		size:     size,
		peers:    append([]string(nil), peers...),
		cfg:      cfg,
		log:      cfg.log.With(slog.Int("rank", rank)),
		upgrader: websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
		dialer:   websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		links:    make([]*link, size),
		accepted: make(chan int, size),
		done:     make(chan struct{}),
	}
	if size == 1 {
		return t, nil
	}

	if rank < size-1 {
		if err := t.listen(peers[rank]); err != nil {
			return nil, wsErrorf(opDial, rank, err)
		}
	}

	for peer := 0; peer < rank; peer++ {
		if err := t.dialPeer(ctx, peer); err != nil {
			_ = t.Close()
			return nil, wsErrorf(opDial, rank, err)
		}
	}

	for want := size - 1 - rank; want > 0; want-- {
		select {
		case <-t.accepted:
		case <-ctx.Done():
			_ = t.Close()
			return nil, wsErrorf(opDial, rank, fmt.Errorf("waiting for %d higher ranks: %w", want, ctx.Err()))
		}
	}
	t.log.Debug("mesh ready", "size", size)

	return t, nil
}

// listen binds addr and serves the upgrade endpoint in the background.
func (t *Transport) listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.HandleFunc(Path, t.serveUpgrade)
	t.srv = &http.Server{Handler: mux, ReadHeaderTimeout: handshakeTimeout}

	go func() {
		if err := t.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.log.Error("serve", "addr", addr, "err", err)
		}
	}()

	return nil
}

// serveUpgrade accepts one link from a higher rank.
func (t *Transport) serveUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		t.log.Warn("upgrade", "remote", r.RemoteAddr, "err", err)
		return
	}
	h, err := readHello(conn)
	if err == nil {
		err = checkHello(h, t.rank, t.size, -1)
	}
	if err == nil {
		err = writeHello(conn, hello{rank: t.rank, size: t.size})
	}
	if err == nil {
		err = t.attach(h.rank, conn)
	}
	if err != nil {
		t.log.Warn("reject link", "remote", r.RemoteAddr, "err", err)
		_ = conn.Close()
		return
	}
	t.log.Debug("link up", "peer", h.rank, "side", "accept")
	t.accepted <- h.rank
}

// dialPeer connects to a lower rank, retrying until it is listening.
func (t *Transport) dialPeer(ctx context.Context, peer int) error {
	u := url.URL{Scheme: "ws", Host: dialHost(t.peers[peer]), Path: Path}
	for attempt := 1; ; attempt++ {
		conn, _, err := t.dialer.DialContext(ctx, u.String(), nil)
		if err == nil {
			if err = t.greet(conn, peer); err != nil {
				_ = conn.Close()
				return err
			}
			t.log.Debug("link up", "peer", peer, "side", "dial", "attempts", attempt)
			return t.attach(peer, conn)
		}
		t.log.Debug("dial retry", "peer", peer, "url", u.String(), "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("peer %d at %s: %w", peer, u.Host, errors.Join(ctx.Err(), err))
		case <-time.After(t.cfg.dialInterval):
		}
	}
}

// greet sends our hello and checks that the answering process is peer.
func (t *Transport) greet(conn *websocket.Conn, peer int) error {
	if err := writeHello(conn, hello{rank: t.rank, size: t.size}); err != nil {
		return err
	}
	h, err := readHello(conn)
	if err != nil {
		return err
	}

	return checkHello(h, t.rank, t.size, peer)
}

// attach registers the link to peer and starts its reader.
func (t *Transport) attach(peer int, conn *websocket.Conn) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed.Load() {
		return comm.ErrClosed
	}
	if t.links[peer] != nil {
		return fmt.Errorf("duplicate link from rank %d: %w", peer, ErrHandshake)
	}
	l := newLink(peer, conn, t.cfg.inboxDepth)
	t.links[peer] = l
	go l.readLoop(t.done)

	return nil
}

// dialHost turns a listen address into something dialable: an empty host
// means this machine.
func dialHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}

	return net.JoinHostPort("localhost", port)
}

// Rank returns this endpoint's rank.
func (t *Transport) Rank() int { return t.rank }

// Size returns the group size.
func (t *Transport) Size() int { return t.size }

// Send frames payload with tag and writes it to dst's link. A ctx deadline
// becomes the socket write deadline.
func (t *Transport) Send(ctx context.Context, dst, tag int, payload []byte) error {
	if t.closed.Load() {
		return comm.ErrClosed
	}
	if err := comm.CheckPeer(t.rank, dst, t.size); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, _ := ctx.Deadline()
	if err := t.links[dst].write(deadline, tag, payload); err != nil {
		return wsErrorf(opSend, t.rank, fmt.Errorf("to %d: %v: %w", dst, err, ErrPeerGone))
	}

	return nil
}

// Recv returns the next frame from src if its tag matches.
func (t *Transport) Recv(ctx context.Context, src, tag int) ([]byte, error) {
	if t.closed.Load() {
		return nil, comm.ErrClosed
	}
	if err := comm.CheckPeer(t.rank, src, t.size); err != nil {
		return nil, err
	}
	l := t.links[src]

	select {
	case f := <-l.inbox:
		return matchTag(src, tag, f)
	case <-l.gone:
		// frames that arrived before the failure are still deliverable
		select {
		case f := <-l.inbox:
			return matchTag(src, tag, f)
		default:
		}
		return nil, wsErrorf(opRecv, t.rank, fmt.Errorf("from %d: %v: %w", src, l.err, ErrPeerGone))
	case <-t.done:
		return nil, comm.ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func matchTag(src, tag int, f frame) ([]byte, error) {
	if f.tag != tag {
		return nil, fmt.Errorf("from %d: got tag %d, want %d: %w", src, f.tag, tag, comm.ErrTagMismatch)
	}

	return f.payload, nil
}

// Close stops the listener, says goodbye on every link and closes them.
// Later Send/Recv return comm.ErrClosed. Close is idempotent.
func (t *Transport) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(t.done)
	if t.srv != nil {
		_ = t.srv.Close()
	}

	t.mu.Lock()
	links := append([]*link(nil), t.links...)
	t.mu.Unlock()

	var errs []error
	bye := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	for _, l := range links {
		if l == nil {
			continue
		}
		_ = l.conn.WriteControl(websocket.CloseMessage, bye, time.Now().Add(time.Second))
		errs = append(errs, l.conn.Close())
	}

	return errors.Join(errs...)
}
