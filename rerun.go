// Package rerun re-runs fallible operations under a bounded attempt budget.
//
// A repetition plan names a total attempt budget, a minimum number of
// successful attempts, and the failure kinds that are tolerated. The first
// attempt always runs; once any tolerated failure has appeared the whole
// budget is spent, and the run passes when the minimum success count is met.
// A failure of a kind outside the whitelist ends the run immediately with
// that failure.
package rerun

import (
	"context"

	"github.com/aponysus/rerun/plan"
	"github.com/aponysus/rerun/repeat"
)

// Operation is the fallible operation governed by a repetition plan.
type Operation = repeat.Operation

// Plan configures one repetition run.
type Plan = plan.Plan

// Init sets the global default runner.
// It must be called before Do/DoValue are used.
func Init(r *repeat.Runner) {
	repeat.SetGlobal(r)
}

// Do runs op using the default runner and the plan for key.
func Do(ctx context.Context, key string, op Operation) error {
	return repeat.DefaultRunner().Do(ctx, key, op)
}

// DoValue runs op using the default runner and the plan for key, returning
// the value of the last successful attempt.
func DoValue[T any](ctx context.Context, key string, op repeat.OperationValue[T]) (T, error) {
	return repeat.DoValue(ctx, repeat.DefaultRunner(), key, op)
}

// DoPlan runs op using the default runner under an explicit plan, bypassing
// the plan provider.
func DoPlan(ctx context.Context, pl Plan, op Operation) error {
	return repeat.DefaultRunner().DoPlan(ctx, pl, op)
}
