package ai_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
)

func fastRetry() ai.RetryConfig {
	return ai.RetryConfig{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}
}

func TestDoRetriesTransient(t *testing.T) {
	calls := 0
	out, err := ai.Do(context.Background(), fastRetry(), slog.Default(), "test", func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &ai.TransientError{Status: 503, Cause: errors.New("overloaded")}
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" {
		t.Errorf("expected ok, got %q", out)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDoGivesUpAfterAttempts(t *testing.T) {
	calls := 0
	_, err := ai.Do(context.Background(), fastRetry(), slog.Default(), "test", func(context.Context) (int, error) {
		calls++
		return 0, &ai.TransientError{Status: 429, Cause: errors.New("rate limited")}
	})
	if !ai.IsTransient(err) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDoNeverRetriesAuthExpired(t *testing.T) {
	calls := 0
	_, err := ai.Do(context.Background(), fastRetry(), slog.Default(), "test", func(context.Context) (int, error) {
		calls++
		return 0, &ai.AuthExpiredError{Status: 401}
	})
	if !ai.IsAuthExpired(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("auth failure must not be retried, got %d calls", calls)
	}
}

func TestDoNeverRetriesMalformed(t *testing.T) {
	calls := 0
	_, err := ai.Do(context.Background(), fastRetry(), slog.Default(), "test", func(context.Context) (int, error) {
		calls++
		return 0, &ai.MalformedResponseError{Detail: "not json"}
	})
	if !ai.IsMalformed(err) {
		t.Fatalf("expected malformed error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("malformed answer must not be retried, got %d calls", calls)
	}
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ai.Do(ctx, ai.RetryConfig{Attempts: 3, BaseDelay: time.Hour}, slog.Default(), "test", func(context.Context) (int, error) {
		return 0, &ai.TransientError{Cause: errors.New("boom")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
