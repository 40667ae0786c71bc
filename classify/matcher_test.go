package classify

import (
	"errors"
	"fmt"
	"testing"
)

type kindError struct {
	kind string
}

func (e *kindError) Error() string { return "kind: " + e.kind }

func TestIs_MatchesWrappedTarget(t *testing.T) {
	target := errors.New("target")
	m := Is(target)

	if !m.Matches(target) {
		t.Fatalf("expected direct match")
	}
	if !m.Matches(fmt.Errorf("wrap: %w", target)) {
		t.Fatalf("expected wrapped match")
	}
	if m.Matches(errors.New("other")) {
		t.Fatalf("unexpected match for unrelated error")
	}
}

func TestAs_MatchesByType(t *testing.T) {
	m := As[*kindError]()

	if !m.Matches(&kindError{kind: "x"}) {
		t.Fatalf("expected type match")
	}
	if !m.Matches(fmt.Errorf("wrap: %w", &kindError{kind: "y"})) {
		t.Fatalf("expected wrapped type match")
	}
	if m.Matches(errors.New("plain")) {
		t.Fatalf("unexpected match for plain error")
	}
}

func TestMatcherFunc_Predicate(t *testing.T) {
	m := MatcherFunc(func(err error) bool {
		return err != nil && err.Error() == "yes"
	})
	if !m.Matches(errors.New("yes")) || m.Matches(errors.New("no")) {
		t.Fatalf("predicate matcher misbehaved")
	}
}
