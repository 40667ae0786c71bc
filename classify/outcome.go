package classify

import "errors"

// OutcomeKind is the classifier's verdict on a failed attempt.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	// OutcomeTolerable failures are absorbed into history and may be retried.
	OutcomeTolerable
	// OutcomeFatal failures end the run immediately; the original error is
	// propagated unchanged.
	OutcomeFatal
)

// Outcome describes the classification of one failure.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Classify decides whether a failure is tolerable under the given whitelist.
//
// The engine's abort signal is always tolerable; errors raised by the
// controller itself never are, even if a whitelist entry would match them.
// Classification is pure: no retries, no side effects.
func Classify(err error, whitelist []Matcher) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeUnknown, Reason: "no_failure"}
	}

	var internal *InternalError
	if errors.As(err, &internal) {
		return Outcome{Kind: OutcomeFatal, Reason: "controller_error"}
	}
	if errors.Is(err, ErrAttemptAborted) {
		return Outcome{Kind: OutcomeTolerable, Reason: "attempt_aborted"}
	}

	for _, m := range whitelist {
		if m != nil && m.Matches(err) {
			return Outcome{Kind: OutcomeTolerable, Reason: "whitelisted"}
		}
	}
	return Outcome{Kind: OutcomeFatal, Reason: "not_whitelisted"}
}
