package classify

import (
	"context"
	"errors"
	"testing"
)

type timeoutError struct{ timeout bool }

func (e *timeoutError) Error() string { return "timeout error" }
func (e *timeoutError) Timeout() bool { return e.timeout }

type temporaryError struct{ temp bool }

func (e *temporaryError) Error() string   { return "temporary error" }
func (e *temporaryError) Temporary() bool { return e.temp }

func TestRegisterBuiltins(t *testing.T) {
	reg := NewRegistry()
	RegisterBuiltins(reg)

	for _, name := range []string{MatcherAny, MatcherTimeout, MatcherTemporary, MatcherCanceled} {
		if _, ok := reg.Get(name); !ok {
			t.Fatalf("builtin %q not registered", name)
		}
	}

	// Must not panic on nil.
	RegisterBuiltins(nil)
}

func TestBuiltin_Any(t *testing.T) {
	m := Any()
	if !m.Matches(errors.New("boom")) {
		t.Fatalf("any should match non-nil errors")
	}
	if m.Matches(nil) {
		t.Fatalf("any should not match nil")
	}
}

func TestBuiltin_Timeout(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "timeout_true", err: &timeoutError{timeout: true}, want: true},
		{name: "timeout_false", err: &timeoutError{timeout: false}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tc := range cases {
		if got := isTimeout(tc.err); got != tc.want {
			t.Fatalf("%s: isTimeout=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBuiltin_Temporary(t *testing.T) {
	if !isTemporary(&temporaryError{temp: true}) {
		t.Fatalf("expected temporary match")
	}
	if isTemporary(&temporaryError{temp: false}) {
		t.Fatalf("unexpected match for non-temporary")
	}
	if isTemporary(errors.New("boom")) {
		t.Fatalf("unexpected match for plain error")
	}
}

func TestBuiltin_Canceled(t *testing.T) {
	reg := NewRegistry()
	RegisterBuiltins(reg)

	m, _ := reg.Get(MatcherCanceled)
	if !m.Matches(context.Canceled) {
		t.Fatalf("expected canceled match")
	}
	if m.Matches(context.DeadlineExceeded) {
		t.Fatalf("unexpected match for deadline exceeded")
	}
}
