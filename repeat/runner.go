package repeat

import (
	"context"
	"errors"
	"time"

	"github.com/aponysus/rerun/classify"
	"github.com/aponysus/rerun/controlplane"
	"github.com/aponysus/rerun/history"
	"github.com/aponysus/rerun/observe"
	"github.com/aponysus/rerun/plan"
)

// Operation is the fallible operation governed by a repetition plan.
type Operation func(ctx context.Context) error

// OperationValue is an Operation that also produces a value.
type OperationValue[T any] func(ctx context.Context) (T, error)

// MissingPlanMode controls behavior when the provider has no plan for a key.
type MissingPlanMode int

const (
	MissingPlanModeUnknown MissingPlanMode = iota
	// MissingPlanDeny fails the run with a NoPlanError.
	MissingPlanDeny
	// MissingPlanFallback runs the operation once under the single-attempt
	// default plan.
	MissingPlanFallback
)

// Runner drives repetition sequences against operations: it resolves plans,
// executes attempts one at a time, reports outcomes to the engine, and
// notifies observers.
type Runner struct {
	provider        controlplane.PlanProvider
	observer        observe.Observer
	clock           func() time.Time
	missingPlanMode MissingPlanMode
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	Provider        controlplane.PlanProvider
	Observer        observe.Observer
	Clock           func() time.Time
	MissingPlanMode MissingPlanMode
}

type runnerConfig struct {
	opts        RunnerOptions
	staticPlans map[string]plan.Plan
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

// WithProvider sets the plan provider.
func WithProvider(p controlplane.PlanProvider) RunnerOption {
	return func(c *runnerConfig) {
		c.opts.Provider = p
	}
}

// WithObserver sets the observer.
func WithObserver(o observe.Observer) RunnerOption {
	return func(c *runnerConfig) {
		c.opts.Observer = o
	}
}

// WithClock sets the clock function.
func WithClock(f func() time.Time) RunnerOption {
	return func(c *runnerConfig) {
		c.opts.Clock = f
	}
}

// WithMissingPlanMode sets the mode for handling missing plans.
func WithMissingPlanMode(mode MissingPlanMode) RunnerOption {
	return func(c *runnerConfig) {
		c.opts.MissingPlanMode = mode
	}
}

// WithPlan adds a static plan for key.
func WithPlan(key string, opts ...plan.Option) RunnerOption {
	return func(c *runnerConfig) {
		if c.staticPlans == nil {
			c.staticPlans = make(map[string]plan.Plan)
		}
		c.staticPlans[key] = plan.New(key, opts...)
	}
}

// NewRunner creates a Runner from options.
func NewRunner(opts ...RunnerOption) *Runner {
	cfg := &runnerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.opts.Provider == nil && len(cfg.staticPlans) > 0 {
		cfg.opts.Provider = &controlplane.StaticProvider{Plans: cfg.staticPlans}
	}

	return NewRunnerFromOptions(cfg.opts)
}

// NewRunnerFromOptions creates a Runner from a config struct.
func NewRunnerFromOptions(opts RunnerOptions) *Runner {
	r := &Runner{
		provider:        opts.Provider,
		observer:        opts.Observer,
		clock:           opts.Clock,
		missingPlanMode: normalizeMissingPlanMode(opts.MissingPlanMode),
	}
	if r.provider == nil {
		r.provider = &controlplane.StaticProvider{}
	}
	if r.observer == nil {
		r.observer = &observe.NoopObserver{}
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	return r
}

func normalizeMissingPlanMode(mode MissingPlanMode) MissingPlanMode {
	switch mode {
	case MissingPlanDeny, MissingPlanFallback:
		return mode
	default:
		return MissingPlanDeny
	}
}

// Do resolves the plan for key and runs op under it.
func (r *Runner) Do(ctx context.Context, key string, op Operation) error {
	_, err := DoValue[struct{}](ctx, r, key, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoPlan runs op under an explicit plan, bypassing the provider.
func (r *Runner) DoPlan(ctx context.Context, pl plan.Plan, op Operation) error {
	_, err := DoValuePlan[struct{}](ctx, r, pl, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue resolves the plan for key and runs op under it, returning the value
// of the last successful attempt.
func DoValue[T any](ctx context.Context, r *Runner, key string, op OperationValue[T]) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}
	r = ensureRunner(r)

	pl, err := r.resolvePlan(ctx, key)
	if err != nil {
		return zero, err
	}
	return DoValuePlan(ctx, r, pl, op)
}

// DoValuePlan runs op under an explicit plan, returning the value of the last
// successful attempt.
func DoValuePlan[T any](ctx context.Context, r *Runner, pl plan.Plan, op OperationValue[T]) (T, error) {
	var last T
	if ctx == nil {
		ctx = context.Background()
	}
	r = ensureRunner(r)

	seq, err := NewSequence(pl)
	if err != nil {
		return last, err
	}

	rec := observe.RunRecord{
		RunID: seq.RunID(),
		Key:   pl.Key,
		Start: r.clock(),
	}
	r.observer.OnStart(ctx, seq.RunID(), pl)

	for seq.HasNext() {
		// The host may stop pulling at any time; a canceled context ends the
		// run without consulting the engine.
		if err := ctx.Err(); err != nil {
			rec.End = r.clock()
			rec.FinalErr = err
			r.observer.OnFailure(ctx, rec)
			return last, err
		}

		att, err := seq.Next()
		if err != nil {
			return last, err
		}

		attemptCtx := observe.WithAttemptInfo(ctx, observe.AttemptInfo{
			RunID:       seq.RunID(),
			Index:       att.Index,
			Total:       att.Total,
			DisplayName: att.DisplayName,
		})

		start := r.clock()
		val, opErr := op(attemptCtx)
		end := r.clock()

		aRec := observe.AttemptRecord{
			RunID:       seq.RunID(),
			Index:       att.Index,
			Total:       att.Total,
			DisplayName: att.DisplayName,
			Start:       start,
			End:         end,
		}

		if opErr == nil {
			seq.ReportSuccess()
			last = val
			aRec.Outcome = history.Success
			rec.Attempts = append(rec.Attempts, aRec)
			r.observer.OnAttempt(ctx, aRec)
			continue
		}

		verdict := seq.ReportFailure(opErr)
		if verdict == nil || errors.Is(verdict, classify.ErrAttemptAborted) {
			aRec.Outcome = history.TolerableFailure
			aRec.Err = opErr
			rec.Attempts = append(rec.Attempts, aRec)
			r.observer.OnAttempt(ctx, aRec)
			continue
		}

		rec.End = r.clock()
		rec.FinalErr = verdict
		r.observer.OnFailure(ctx, rec)
		return last, verdict
	}

	rec.End = r.clock()
	r.observer.OnSuccess(ctx, rec)
	return last, nil
}

func ensureRunner(r *Runner) *Runner {
	if r == nil {
		return NewRunner()
	}
	if r.provider == nil || r.observer == nil || r.clock == nil {
		return NewRunnerFromOptions(RunnerOptions{
			Provider:        r.provider,
			Observer:        r.observer,
			Clock:           r.clock,
			MissingPlanMode: r.missingPlanMode,
		})
	}
	return r
}

func (r *Runner) resolvePlan(ctx context.Context, key string) (plan.Plan, error) {
	pl, err := r.provider.GetPlan(ctx, key)
	if err != nil {
		if r.missingPlanMode == MissingPlanFallback && errors.Is(err, controlplane.ErrPlanNotFound) {
			return plan.Default(key), nil
		}
		return plan.Plan{}, &NoPlanError{Key: key, Err: err}
	}
	if pl.Key == "" {
		pl.Key = key
	}
	return pl, nil
}
