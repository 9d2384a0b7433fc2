package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "together"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	// Different key has its own bucket
	if err := limiter.Wait(ctx, "ollama"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	if !limiter.Allow("together") {
		t.Error("expected first request allowed by burst")
	}
	if limiter.Allow("together") {
		t.Error("expected second request denied")
	}
	// Other keys are unaffected
	if !limiter.Allow("anthropic") {
		t.Error("expected fresh key allowed")
	}
}

func TestLimiter_RateEnforced(t *testing.T) {
	// 20 rps, burst 1: the second Wait should block roughly 50ms
	limiter := NewLimiter(20, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "k"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	start := time.Now()
	if err := limiter.Wait(ctx, "k"); err != nil {
		t.Fatalf("second wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("expected rate limiting delay, got %v", elapsed)
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	limiter.SetRate("fast", 1000, 10)

	for i := 0; i < 5; i++ {
		if !limiter.Allow("fast") {
			t.Fatalf("expected overridden key to allow request %d", i)
		}
	}
}

func TestLimiter_DefaultBurst(t *testing.T) {
	limiter := NewLimiter(10, -1)
	if limiter.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for invalid input, got %d", limiter.defaultBurst)
	}
}
