// Package controlplane supplies repetition plans to the runner, either from
// in-process maps or from plan files.
package controlplane

import (
	"context"
	"fmt"

	"github.com/aponysus/rerun/plan"
)

// PlanProvider supplies a Plan for a key.
type PlanProvider interface {
	// GetPlan returns the plan for key. If no plan exists it must return an
	// error matching ErrPlanNotFound.
	GetPlan(ctx context.Context, key string) (plan.Plan, error)
}

// StaticProvider is an in-process PlanProvider backed by a map and an
// optional default.
type StaticProvider struct {
	Plans   map[string]plan.Plan
	Default plan.Plan
}

func (p *StaticProvider) GetPlan(_ context.Context, key string) (plan.Plan, error) {
	if p != nil && p.Plans != nil {
		if pl, ok := p.Plans[key]; ok {
			pl.Key = key
			return pl, pl.Validate()
		}
	}

	if p != nil && !isZeroPlan(p.Default) {
		pl := p.Default
		pl.Key = key
		return pl, pl.Validate()
	}

	return plan.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, key)
}

func isZeroPlan(pl plan.Plan) bool {
	return pl.Key == "" &&
		pl.BaseName == "" &&
		pl.TotalAttempts == 0 &&
		pl.MinSuccesses == 0 &&
		len(pl.RepeatOn) == 0 &&
		pl.NamePattern == ""
}
