// SPDX-License-Identifier: MIT

package comm

import (
	"encoding/binary"
	"fmt"
)

// Wire encoding of collective payloads: little-endian fixed width, no header.
// The element count is implied by the payload length.

func encodeInt32s(src []int32) []byte {
	out := make([]byte, 0, 4*len(src))
	for _, v := range src {
		out = binary.LittleEndian.AppendUint32(out, uint32(v))
	}

	return out
}

// decodeInt32s fills dst from p; len(p) must be exactly 4*len(dst).
func decodeInt32s(dst []int32, p []byte) error {
	if len(p) != 4*len(dst) {
		return fmt.Errorf("payload %d bytes for %d elements: %w", len(p), len(dst), ErrBufferSize)
	}
	for i := range dst {
		dst[i] = int32(binary.LittleEndian.Uint32(p[4*i:]))
	}

	return nil
}

func encodeInt64(v int64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), uint64(v))
}

func decodeInt64(p []byte) (int64, error) {
	if len(p) != 8 {
		return 0, fmt.Errorf("payload %d bytes for int64: %w", len(p), ErrBufferSize)
	}

	return int64(binary.LittleEndian.Uint64(p)), nil
}
