package retry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDo_Success(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return nil
	}

	ctx := context.Background()
	err := Do(ctx, operation)

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestDo_NoRetriesByDefault(t *testing.T) {
	t.Parallel()
	attempts := 0
	wantErr := errors.New("persistent error")
	operation := func() error {
		attempts++
		return wantErr
	}

	ctx := context.Background()
	err := Do(ctx, operation)

	if !errors.Is(err, wantErr) {
		t.Errorf("Expected the operation error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}

	ctx := context.Background()
	err := Do(ctx, operation, WithMaxRetries(5), WithInitialDelay(10*time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error after retries, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
}

func TestDo_MaxRetriesExceeded(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("persistent error")
	}

	ctx := context.Background()
	err := Do(ctx, operation, WithMaxRetries(2), WithInitialDelay(time.Millisecond))

	if err == nil {
		t.Fatal("Expected an error after exhausting retries")
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
	if !strings.Contains(err.Error(), "operation failed after 3 attempts") {
		t.Errorf("Expected attempt count in error, got: %v", err)
	}
}

func TestDo_FatalErrorNotRetried(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return Fatal(errors.New("bad request"))
	}

	ctx := context.Background()
	err := Do(ctx, operation, WithMaxRetries(5), WithInitialDelay(time.Millisecond))

	if err == nil {
		t.Fatal("Expected an error")
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt for a fatal error, got: %d", attempts)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("temporary error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, operation, WithMaxRetries(5), WithInitialDelay(time.Hour))

	if err == nil {
		t.Fatal("Expected an error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestDo_BackoffCappedAtMaxDelay(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("temporary error")
	}

	ctx := context.Background()
	start := time.Now()
	_ = Do(ctx, operation,
		WithMaxRetries(3),
		WithInitialDelay(time.Millisecond),
		WithMaxDelay(2*time.Millisecond),
		WithMultiplier(100),
	)

	if attempts != 4 {
		t.Errorf("Expected 4 attempts, got: %d", attempts)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected capped delays, took: %v", elapsed)
	}
}

func TestFatal_NilError(t *testing.T) {
	t.Parallel()
	if Fatal(nil) != nil {
		t.Error("Fatal(nil) should return nil")
	}
}

func TestIsFatal(t *testing.T) {
	t.Parallel()
	base := errors.New("boom")

	if IsFatal(base) {
		t.Error("plain error should not be fatal")
	}
	if !IsFatal(Fatal(base)) {
		t.Error("wrapped error should be fatal")
	}

	// Unwrap should yield the original error.
	if !errors.Is(Fatal(base), base) {
		t.Error("Fatal should preserve the error chain")
	}
}
