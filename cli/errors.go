// SPDX-License-Identifier: MIT

package cli

import "errors"

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitRuntime = 2
)

// runtimeError marks a failure of the running group. Every other error that
// reaches Execute is a usage error.
type runtimeError struct{ err error }

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func asRuntime(err error) error {
	if err == nil {
		return nil
	}

	return &runtimeError{err: err}
}

// exitCode maps an Execute error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var re *runtimeError
	if errors.As(err, &re) {
		return ExitRuntime
	}

	return ExitUsage
}
