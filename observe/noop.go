package observe

import (
	"context"

	"github.com/aponysus/rerun/plan"
)

// NoopObserver implements Observer with no-op methods.
type NoopObserver struct{}

func (NoopObserver) OnStart(context.Context, string, plan.Plan) {}
func (NoopObserver) OnAttempt(context.Context, AttemptRecord)   {}
func (NoopObserver) OnSuccess(context.Context, RunRecord)       {}
func (NoopObserver) OnFailure(context.Context, RunRecord)       {}
