// SPDX-License-Identifier: MIT

// Package cli is the lvmpi command line: cobra commands that resolve the
// configuration, start a rank group (in process or over the network) and run
// one of the distributed programs on it.
//
// Exit codes: ExitOK on success, ExitUsage for argument and configuration
// errors (always detected before any rank starts), ExitRuntime when the group
// fails while running.
package cli
