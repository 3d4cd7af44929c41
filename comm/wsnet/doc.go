// SPDX-License-Identifier: MIT

// Package wsnet is a comm.Transport over a full mesh of WebSocket links, one
// per pair of ranks, for running a group as separate processes.
//
// Every rank listens on its own address from the shared peer list and serves
// the upgrade endpoint at Path. Rank r dials every lower rank and accepts a
// connection from every higher one; the dialer introduces itself with a
// hello frame carrying its rank and the group size. Dial returns once all
// size−1 links are up.
//
// Wire format: each WebSocket binary message is one frame, a 4-byte
// little-endian tag followed by the payload. Messages on a link are
// delivered in send order, which is all comm's collectives need.
//
// Failure model: a broken link fails every pending and later Recv from that
// peer with ErrPeerGone. There is no reconnection.
package wsnet
