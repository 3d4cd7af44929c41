// SPDX-License-Identifier: MIT

package wsnet

import (
	"errors"
	"fmt"
)

var (
	// ErrHandshake indicates a malformed or unexpected hello frame: unknown
	// rank, duplicate link, wrong group size or a dial from a lower rank.
	ErrHandshake = errors.New("wsnet: handshake failed")

	// ErrPeerGone indicates the link to a peer broke before the expected
	// message arrived.
	ErrPeerGone = errors.New("wsnet: peer connection lost")

	// ErrBadFrame indicates a binary message shorter than the tag header.
	ErrBadFrame = errors.New("wsnet: malformed frame")
)

// wsErrorf wraps err as "wsnet.<op>(rank=<r>): <err>".
func wsErrorf(op string, rank int, err error) error {
	return fmt.Errorf("wsnet.%s(rank=%d): %w", op, rank, err)
}
