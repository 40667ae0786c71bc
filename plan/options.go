package plan

import "github.com/aponysus/rerun/classify"

// Option mutates a Plan under construction.
type Option func(*Plan)

// New builds a Plan for key from the single-attempt default plus opts.
func New(key string, opts ...Option) Plan {
	p := Default(key)
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Attempts sets the total attempt budget.
func Attempts(n int) Option {
	return func(p *Plan) {
		p.TotalAttempts = n
	}
}

// MinSuccesses sets the minimum number of successful attempts.
func MinSuccesses(n int) Option {
	return func(p *Plan) {
		p.MinSuccesses = n
	}
}

// RepeatOn sets the tolerable failure kinds.
func RepeatOn(matchers ...classify.Matcher) Option {
	return func(p *Plan) {
		p.RepeatOn = matchers
	}
}

// NamePattern sets the per-attempt display-name template.
func NamePattern(pattern string) Option {
	return func(p *Plan) {
		p.NamePattern = pattern
	}
}

// BaseName sets the base display name substituted into the pattern.
func BaseName(name string) Option {
	return func(p *Plan) {
		p.BaseName = name
	}
}
