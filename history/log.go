// Package history holds the per-run record of attempt outcomes.
//
// The log is append-only and safe for concurrent use: the thread reporting an
// attempt's outcome and the thread deciding the next attempt need not be the
// same one.
package history

import "sync"

// Outcome is the recorded result of one completed attempt. Fatal failures are
// never recorded; they end the run before an outcome exists.
type Outcome int

const (
	Success Outcome = iota
	TolerableFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case TolerableFailure:
		return "tolerable_failure"
	default:
		return "unknown"
	}
}

// Log is an append-only ordered sequence of attempt outcomes.
// The zero value is ready to use.
type Log struct {
	mu       sync.RWMutex
	outcomes []Outcome
}

func New() *Log {
	return &Log{}
}

// Append records the outcome of a completed attempt.
func (l *Log) Append(o Outcome) {
	l.mu.Lock()
	l.outcomes = append(l.outcomes, o)
	l.mu.Unlock()
}

// Len returns the number of recorded outcomes.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.outcomes)
}

// Successes counts recorded successful attempts.
func (l *Log) Successes() int {
	return l.count(Success)
}

// Failures counts recorded tolerable failures.
func (l *Log) Failures() int {
	return l.count(TolerableFailure)
}

// AnyFailure reports whether at least one tolerable failure has been recorded.
func (l *Log) AnyFailure() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.outcomes {
		if o == TolerableFailure {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the outcomes recorded so far, in order.
func (l *Log) Snapshot() []Outcome {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Outcome, len(l.outcomes))
	copy(out, l.outcomes)
	return out
}

func (l *Log) count(want Outcome) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, o := range l.outcomes {
		if o == want {
			n++
		}
	}
	return n
}
