// Package plan defines the immutable per-run configuration of the repetition
// controller: the attempt budget, the required success count, the tolerable
// failure kinds and the display-name pattern.
package plan

import "github.com/aponysus/rerun/classify"

// Plan configures one repetition run. A Plan is constructed once before the
// first attempt and never mutated afterwards.
type Plan struct {
	// Key identifies the plan to providers and observers.
	Key string

	// BaseName is the human-readable name substituted into NamePattern.
	// Empty means Key.
	BaseName string

	// TotalAttempts is the hard upper bound on attempts. Must be positive.
	TotalAttempts int

	// MinSuccesses is the number of successful attempts required for the run
	// to count as an overall success. Must be at least 1. Values above
	// TotalAttempts are not rejected here; the engine's reachability check
	// makes such runs fail on the first tolerable failure.
	MinSuccesses int

	// RepeatOn lists the tolerable failure kinds. Empty means any failure is
	// tolerable.
	RepeatOn []classify.Matcher

	// NamePattern is the per-attempt display-name template. Blank patterns
	// fall back to the base name unchanged.
	NamePattern string
}

// Default returns the single-attempt plan for key.
func Default(key string) Plan {
	return Plan{
		Key:           key,
		TotalAttempts: 1,
		MinSuccesses:  1,
	}
}

// Validate fails fast on configuration the engine must never run with.
func (p Plan) Validate() error {
	if p.TotalAttempts <= 0 {
		return &ValidationError{Field: "attempts", Value: p.TotalAttempts}
	}
	if p.MinSuccesses < 1 {
		return &ValidationError{Field: "min_successes", Value: p.MinSuccesses}
	}
	return nil
}

// Whitelist returns the tolerable failure kinds, defaulting to any failure
// when the plan names none.
func (p Plan) Whitelist() []classify.Matcher {
	if len(p.RepeatOn) == 0 {
		return []classify.Matcher{classify.Any()}
	}
	return p.RepeatOn
}

// DisplayBase returns the base display name, falling back to the key.
func (p Plan) DisplayBase() string {
	if p.BaseName != "" {
		return p.BaseName
	}
	return p.Key
}
