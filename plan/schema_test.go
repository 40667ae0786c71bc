package plan

import (
	"errors"
	"testing"

	"github.com/aponysus/rerun/classify"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		plan      Plan
		wantField string
	}{
		{name: "default_ok", plan: Default("k")},
		{name: "zero_attempts", plan: Plan{TotalAttempts: 0, MinSuccesses: 1}, wantField: "attempts"},
		{name: "negative_attempts", plan: Plan{TotalAttempts: -3, MinSuccesses: 1}, wantField: "attempts"},
		{name: "zero_min", plan: Plan{TotalAttempts: 3, MinSuccesses: 0}, wantField: "min_successes"},
		{name: "negative_min", plan: Plan{TotalAttempts: 3, MinSuccesses: -1}, wantField: "min_successes"},
		{name: "min_above_total_allowed", plan: Plan{TotalAttempts: 2, MinSuccesses: 5}},
	}

	for _, tc := range cases {
		err := tc.plan.Validate()
		if tc.wantField == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Field != tc.wantField {
			t.Fatalf("%s: field=%q, want %q", tc.name, verr.Field, tc.wantField)
		}
	}
}

func TestWhitelist_DefaultsToAny(t *testing.T) {
	p := Default("k")
	wl := p.Whitelist()
	if len(wl) != 1 {
		t.Fatalf("len=%d, want 1", len(wl))
	}
	if !wl[0].Matches(errors.New("anything")) {
		t.Fatalf("default whitelist should match any failure")
	}
}

func TestWhitelist_UsesConfiguredMatchers(t *testing.T) {
	target := errors.New("flaky")
	p := New("k", RepeatOn(classify.Is(target)))

	wl := p.Whitelist()
	if len(wl) != 1 {
		t.Fatalf("len=%d, want 1", len(wl))
	}
	if !wl[0].Matches(target) || wl[0].Matches(errors.New("other")) {
		t.Fatalf("configured whitelist not honored")
	}
}

func TestDisplayBase(t *testing.T) {
	if got := Default("key").DisplayBase(); got != "key" {
		t.Fatalf("got %q, want key", got)
	}
	if got := New("key", BaseName("pretty")).DisplayBase(); got != "pretty" {
		t.Fatalf("got %q, want pretty", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "attempts", Value: -1}
	if got := err.Error(); got != "rerun: invalid plan: attempts=-1" {
		t.Fatalf("unexpected error string: %q", got)
	}
	var nilErr *ValidationError
	if got := nilErr.Error(); got != "<nil>" {
		t.Fatalf("nil receiver: %q", got)
	}
}
