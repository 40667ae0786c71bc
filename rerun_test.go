package rerun_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"

	"github.com/aponysus/rerun"
	"github.com/aponysus/rerun/plan"
	"github.com/aponysus/rerun/repeat"
)

func TestMain(m *testing.M) {
	rerun.Init(newTestRunner())
	os.Exit(m.Run())
}

func newTestRunner() *repeat.Runner {
	return repeat.NewRunner(
		repeat.WithPlan("rerun.success", plan.Attempts(2)),
		repeat.WithPlan("rerun.flaky", plan.Attempts(3), plan.MinSuccesses(1)),
	)
}

func TestDoValue_SimpleSuccess(t *testing.T) {
	ctx := context.Background()
	got, err := rerun.DoValue(ctx, "rerun.success", func(ctx context.Context) (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestDo_SimpleSuccess(t *testing.T) {
	ctx := context.Background()
	err := rerun.Do(ctx, "rerun.success", func(context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoValue_RepeatsAfterFailure(t *testing.T) {
	ctx := context.Background()
	var attempts int32
	got, err := rerun.DoValue(ctx, "rerun.flaky", func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return 0, errors.New("flaky once")
		}
		return 99, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 99 {
		t.Fatalf("expected 99, got %d", got)
	}
	// Once a failure has appeared the whole budget is spent.
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_UnknownKeyIsDenied(t *testing.T) {
	err := rerun.Do(context.Background(), "rerun.unknown", func(context.Context) error {
		return nil
	})
	if !errors.Is(err, repeat.ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan, got %v", err)
	}
}

func TestDoPlan_InlinePlan(t *testing.T) {
	var attempts int32
	err := rerun.DoPlan(context.Background(),
		plan.New("inline", plan.Attempts(2), plan.MinSuccesses(1)),
		func(context.Context) error {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return errors.New("flaky once")
			}
			return nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}
