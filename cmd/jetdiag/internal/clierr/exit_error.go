// Package clierr carries explicit process exit codes through the error
// chain so main stays a one-liner. jetdiag's contract: 1 means at least
// one probe failed, 2 means the run never started (registry or
// configuration fault).
package clierr

import (
	"errors"
	"fmt"
)

const (
	// CodeProbesFailed gates automation consuming the exit status.
	CodeProbesFailed = 1
	// CodeFault covers registry construction and configuration errors.
	CodeFault = 2
)

// ExitError wraps a cause with an explicit exit code. Unwrap keeps
// errors.Is/As working across the chain.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }
func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message and no cause.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap attaches an exit code to an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts the exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return 1
}

func normalize(code int) int {
	if code <= 0 {
		return 1
	}
	return code
}
