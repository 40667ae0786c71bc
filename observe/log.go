package observe

import (
	"context"
	"log/slog"

	"github.com/aponysus/rerun/plan"
)

// LogObserver logs run and attempt lifecycle through slog. The handler is the
// caller's choice; a nil logger uses slog.Default.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (l *LogObserver) OnStart(ctx context.Context, runID string, pl plan.Plan) {
	l.logger.InfoContext(ctx, "run started",
		"run_id", runID,
		"key", pl.Key,
		"attempts", pl.TotalAttempts,
		"min_successes", pl.MinSuccesses,
	)
}

func (l *LogObserver) OnAttempt(ctx context.Context, rec AttemptRecord) {
	l.logger.DebugContext(ctx, "attempt finished",
		"run_id", rec.RunID,
		"attempt", rec.Index,
		"total", rec.Total,
		"name", rec.DisplayName,
		"outcome", rec.Outcome.String(),
		"error", rec.Err,
	)
}

func (l *LogObserver) OnSuccess(ctx context.Context, rec RunRecord) {
	l.logger.InfoContext(ctx, "run succeeded",
		"run_id", rec.RunID,
		"key", rec.Key,
		"attempts", len(rec.Attempts),
	)
}

func (l *LogObserver) OnFailure(ctx context.Context, rec RunRecord) {
	l.logger.WarnContext(ctx, "run failed",
		"run_id", rec.RunID,
		"key", rec.Key,
		"attempts", len(rec.Attempts),
		"error", rec.FinalErr,
	)
}
