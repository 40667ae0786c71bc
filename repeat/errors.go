package repeat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMoreAttempts is returned by Next once the attempt sequence is
	// exhausted. Pulling past the end is a protocol violation by the host,
	// distinct from any operation failure.
	ErrNoMoreAttempts = errors.New("rerun: attempt sequence exhausted")

	// ErrNoPlan is returned when the provider has no plan for a key and the
	// runner is configured to deny missing plans.
	ErrNoPlan = errors.New("rerun: no plan found")
)

// NoPlanError reports which key had no plan.
type NoPlanError struct {
	Key string
	Err error
}

func (e *NoPlanError) Error() string {
	return fmt.Sprintf("rerun: plan not found for %s: %v", e.Key, e.Err)
}

func (e *NoPlanError) Unwrap() error {
	return e.Err
}

func (e *NoPlanError) Is(target error) bool {
	return target == ErrNoPlan
}
