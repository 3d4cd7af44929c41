// SPDX-License-Identifier: MIT

// Package prefix computes a distributed inclusive scan (prefix sum) with the
// recursive-doubling schedule: in round k every rank r sends its running sum
// to r+2^k and adds the sum received from r−2^k, so after ⌈log2 size⌉ rounds
// rank r holds values[0] + … + values[r].
//
// Every rank performs the same number of rounds; ranks at the edges take part
// with comm.NoPeer on the missing side, so no rank skips a collective.
package prefix
