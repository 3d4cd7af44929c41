// SPDX-License-Identifier: MIT

package wsnet

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvmpi/comm"
)

// tagLen is the frame header: little-endian int32 tag.
const tagLen = 4

type frame struct {
	tag     int
	payload []byte
}

// link is the connection to one peer. A single reader goroutine owns the read
// side; writers serialize on wmu.
type link struct {
	peer  int
	conn  *websocket.Conn
	wmu   sync.Mutex
	inbox chan frame
	gone  chan struct{} // closed when the reader stops
	err   error         // why the reader stopped; valid once gone is closed
}

func newLink(peer int, conn *websocket.Conn, depth int) *link {
	return &link{
		peer:  peer,
		conn:  conn,
		inbox: make(chan frame, depth),
		gone:  make(chan struct{}),
	}
}

// readLoop moves frames from the socket into inbox until the link breaks or
// done is closed. Frames read before a failure stay in inbox.
func (l *link) readLoop(done <-chan struct{}) {
	defer close(l.gone)
	for {
		mt, b, err := l.conn.ReadMessage()
		if err != nil {
			l.err = err
			return
		}
		if mt != websocket.BinaryMessage || len(b) < tagLen {
			l.err = ErrBadFrame
			return
		}
		f := frame{tag: int(int32(binary.LittleEndian.Uint32(b))), payload: b[tagLen:]}
		select {
		case l.inbox <- f:
		case <-done:
			l.err = comm.ErrClosed
			return
		}
	}
}

// write sends one framed message. A zero deadline means no deadline.
func (l *link) write(deadline time.Time, tag int, payload []byte) error {
	b := make([]byte, tagLen+len(payload))
	binary.LittleEndian.PutUint32(b, uint32(int32(tag)))
	copy(b[tagLen:], payload)

	l.wmu.Lock()
	defer l.wmu.Unlock()
	if err := l.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}

	return l.conn.WriteMessage(websocket.BinaryMessage, b)
}
