package observe

import (
	"context"
	"testing"
)

func TestAttemptInfo_RoundTrip(t *testing.T) {
	info := AttemptInfo{RunID: "run-1", Index: 2, Total: 5, DisplayName: "op (2 of 5)"}
	ctx := WithAttemptInfo(context.Background(), info)

	got, ok := AttemptFromContext(ctx)
	if !ok {
		t.Fatalf("expected attempt info in context")
	}
	if got != info {
		t.Fatalf("got %+v, want %+v", got, info)
	}
}

func TestAttemptInfo_Absent(t *testing.T) {
	if _, ok := AttemptFromContext(context.Background()); ok {
		t.Fatalf("unexpected attempt info in bare context")
	}
}
