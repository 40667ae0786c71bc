package plan

import "fmt"

// ValidationError indicates a fundamentally invalid plan. It is raised before
// any attempt runs and is never retried.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rerun: invalid plan: %s=%d", e.Field, e.Value)
}
