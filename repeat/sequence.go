// Package repeat implements the repetition decision engine: a bounded,
// pull-based sequence of attempts whose continuation depends on the failures
// observed so far, plus a runner that drives the sequence against an
// operation.
package repeat

import (
	"github.com/google/uuid"

	"github.com/aponysus/rerun/classify"
	"github.com/aponysus/rerun/display"
	"github.com/aponysus/rerun/history"
	"github.com/aponysus/rerun/plan"
)

// Attempt is the per-attempt context handed to the host for execution.
type Attempt struct {
	// Index of this attempt, 1-based.
	Index int
	// Total attempt budget.
	Total int
	// Successes recorded before this attempt was produced.
	Successes int
	// MinSuccesses required for the run to pass.
	MinSuccesses int
	// FailureSeen reports whether any tolerable failure has appeared so far.
	FailureSeen bool
	// DisplayName is the formatted label for this attempt.
	DisplayName string
}

// Sequence is the decision engine for one run. The host pulls attempts via
// HasNext/Next, executes the operation, and reports each outcome back via
// ReportSuccess/ReportFailure.
//
// The sequence is finite and non-restartable. Its history is safe to report
// from a different goroutine than the one pulling attempts; the pull and
// report calls themselves follow the single-attempt-at-a-time protocol.
type Sequence struct {
	pl        plan.Plan
	whitelist []classify.Matcher
	formatter *display.Formatter
	hist      *history.Log
	runID     string

	index       int
	failureSeen bool
	terminated  bool
}

// NewSequence validates pl and builds the engine for one run.
func NewSequence(pl plan.Plan) (*Sequence, error) {
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	return &Sequence{
		pl:        pl,
		whitelist: pl.Whitelist(),
		formatter: display.NewFormatter(pl.NamePattern, pl.DisplayBase()),
		hist:      history.New(),
		runID:     uuid.NewString(),
	}, nil
}

// RunID identifies this run in observer records and attempt contexts.
func (s *Sequence) RunID() string {
	return s.runID
}

// Plan returns the run's configuration.
func (s *Sequence) Plan() plan.Plan {
	return s.pl
}

// History exposes the run's outcome log.
func (s *Sequence) History() *history.Log {
	return s.hist
}

// HasNext reports whether another attempt should be produced.
//
// The first attempt is unconditional. A later attempt is produced only while
// at least one tolerable failure has ever been recorded and the budget is not
// exhausted — intervening successes do not stop the sequence. A run whose
// first attempt succeeds outright therefore ends after one attempt, and a run
// that has seen a failure spends the whole budget.
func (s *Sequence) HasNext() bool {
	if s.terminated {
		return false
	}
	if s.index == 0 {
		return true
	}
	return s.hist.AnyFailure() && s.index < s.pl.TotalAttempts
}

// Next produces the next attempt context, or ErrNoMoreAttempts when the
// sequence is exhausted.
func (s *Sequence) Next() (Attempt, error) {
	successes := s.hist.Successes()
	if !s.HasNext() {
		return Attempt{}, &classify.InternalError{Op: "next", Err: ErrNoMoreAttempts}
	}
	s.index++
	return Attempt{
		Index:        s.index,
		Total:        s.pl.TotalAttempts,
		Successes:    successes,
		MinSuccesses: s.pl.MinSuccesses,
		FailureSeen:  s.failureSeen,
		DisplayName:  s.formatter.Format(s.index, s.pl.TotalAttempts),
	}, nil
}

// ReportSuccess records a successful attempt.
func (s *Sequence) ReportSuccess() {
	s.hist.Append(history.Success)
}

// ReportFailure applies the decision algorithm to a failed attempt.
//
// It returns one of three verdicts:
//   - nil: the failure was tolerable and the minimum success count is already
//     met; the failure is absorbed into history.
//   - an error matching classify.ErrAttemptAborted: the failure was tolerable
//     and the target is still reachable; the attempt is recorded as a
//     tolerable failure and the host should pull the next attempt.
//   - err itself, unchanged: the failure is fatal — either its kind is not
//     whitelisted, or the success target can no longer be met within the
//     budget. The run is over and nothing is recorded for this attempt.
func (s *Sequence) ReportFailure(err error) error {
	if err == nil {
		return nil
	}

	out := classify.Classify(err, s.whitelist)
	if out.Kind != classify.OutcomeTolerable {
		s.terminated = true
		return err
	}

	s.failureSeen = true

	if s.hist.Successes() >= s.pl.MinSuccesses {
		s.hist.Append(history.TolerableFailure)
		return nil
	}

	// Reachable iff enough attempts remain to still accumulate the minimum.
	if s.hist.Failures() < s.pl.TotalAttempts-s.pl.MinSuccesses {
		s.hist.Append(history.TolerableFailure)
		return &classify.AbortError{Cause: err}
	}

	s.terminated = true
	return err
}
