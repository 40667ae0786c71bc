package observe

import (
	"context"

	"github.com/aponysus/rerun/plan"
)

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnStart(context.Context, string, plan.Plan) {}
func (BaseObserver) OnAttempt(context.Context, AttemptRecord)   {}
func (BaseObserver) OnSuccess(context.Context, RunRecord)       {}
func (BaseObserver) OnFailure(context.Context, RunRecord)       {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnStart(ctx context.Context, runID string, pl plan.Plan) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnStart(ctx, runID, pl)
		}
	}
}

func (m MultiObserver) OnAttempt(ctx context.Context, rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnAttempt(ctx, rec)
		}
	}
}

func (m MultiObserver) OnSuccess(ctx context.Context, rec RunRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnSuccess(ctx, rec)
		}
	}
}

func (m MultiObserver) OnFailure(ctx context.Context, rec RunRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnFailure(ctx, rec)
		}
	}
}
