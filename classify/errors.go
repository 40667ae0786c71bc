package classify

import (
	"errors"
	"fmt"
)

// ErrAttemptAborted is the engine's own retry signal: an attempt that failed
// tolerably and was given up on so the run can move to the next attempt.
// It is implicitly part of every whitelist.
var ErrAttemptAborted = errors.New("rerun: attempt aborted, repetition continues")

// AbortError carries the failure that caused an attempt to be aborted.
type AbortError struct {
	Cause error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("rerun: attempt aborted for repetition: %v", e.Cause)
}

func (e *AbortError) Unwrap() error {
	return e.Cause
}

func (e *AbortError) Is(target error) bool {
	return target == ErrAttemptAborted
}

// InternalError marks a failure raised by the controller itself rather than by
// the governed operation. Classify never tolerates these, so a controller
// error leaking back through an operation cannot masquerade as a user failure.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rerun: %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
