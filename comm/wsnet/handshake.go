// SPDX-License-Identifier: MIT

package wsnet

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// handshakeTimeout bounds each hello read and write.
const handshakeTimeout = 10 * time.Second

// helloLen is the hello frame size: uint32 rank, uint32 group size.
const helloLen = 8

type hello struct {
	rank, size int
}

func writeHello(conn *websocket.Conn, h hello) error {
	var b [helloLen]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(h.rank))
	binary.LittleEndian.PutUint32(b[4:8], uint32(h.size))
	if err := conn.SetWriteDeadline(time.Now().Add(handshakeTimeout)); err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, b[:]); err != nil {
		return err
	}

	return conn.SetWriteDeadline(time.Time{})
}

func readHello(conn *websocket.Conn) (hello, error) {
	if err := conn.SetReadDeadline(time.Now().Add(handshakeTimeout)); err != nil {
		return hello{}, err
	}
	mt, b, err := conn.ReadMessage()
	if err != nil {
		return hello{}, fmt.Errorf("read hello: %v: %w", err, ErrHandshake)
	}
	if mt != websocket.BinaryMessage || len(b) != helloLen {
		return hello{}, fmt.Errorf("hello of %d bytes: %w", len(b), ErrHandshake)
	}
	h := hello{
		rank: int(binary.LittleEndian.Uint32(b[0:4])),
		size: int(binary.LittleEndian.Uint32(b[4:8])),
	}

	return h, conn.SetReadDeadline(time.Time{})
}

// checkHello validates a peer's hello against the local view of the group.
// want is the expected peer rank, or -1 to accept any higher rank.
func checkHello(h hello, self, size, want int) error {
	switch {
	case h.size != size:
		return fmt.Errorf("peer size %d, local size %d: %w", h.size, size, ErrHandshake)
	case want >= 0 && h.rank != want:
		return fmt.Errorf("expected rank %d, peer says %d: %w", want, h.rank, ErrHandshake)
	case want < 0 && (h.rank <= self || h.rank >= size):
		return fmt.Errorf("unexpected dial from rank %d: %w", h.rank, ErrHandshake)
	}

	return nil
}
