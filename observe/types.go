package observe

import (
	"context"
	"time"

	"github.com/aponysus/rerun/history"
	"github.com/aponysus/rerun/plan"
)

// AttemptRecord describes a single completed attempt.
type AttemptRecord struct {
	RunID       string
	Index       int // 1-based attempt index
	Total       int
	DisplayName string

	Start time.Time
	End   time.Time

	Outcome history.Outcome

	// Err is the tolerable failure the attempt ended with, nil on success.
	Err error
}

// RunRecord is the structured record of a single run and all of its attempts.
type RunRecord struct {
	RunID string
	Key   string
	Start time.Time
	End   time.Time

	Attempts []AttemptRecord

	// FinalErr is the fatal failure that ended the run, nil on success.
	FinalErr error
}

// Observer receives lifecycle callbacks for a single run.
type Observer interface {
	OnStart(ctx context.Context, runID string, pl plan.Plan)
	OnAttempt(ctx context.Context, rec AttemptRecord)
	OnSuccess(ctx context.Context, rec RunRecord)
	OnFailure(ctx context.Context, rec RunRecord)
}
