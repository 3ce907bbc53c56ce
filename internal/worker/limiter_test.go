package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "gemini"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// A different provider has its own bucket
	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1: the second immediate request must not be allowed
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "gemini"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow("gemini") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Another key is unaffected
	if !limiter.Allow("ollama") {
		t.Errorf("expected allow for other key")
	}
}

func TestLimiter_Wait_ContextCancelled(t *testing.T) {
	limiter := NewLimiter(0.1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Drain the burst token, then the next wait must fail on the deadline
	if err := limiter.Wait(ctx, "gemini"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	if err := limiter.Wait(ctx, "gemini"); err == nil {
		t.Error("expected error when context deadline is shorter than refill")
	}
}

func TestLimiter_SetKeyRate(t *testing.T) {
	limiter := NewLimiter(10, 10) // fast default

	limiter.SetKeyRate("slow-provider", 0.1, 1)

	if !limiter.Allow("slow-provider") {
		t.Errorf("first request should pass")
	}

	if limiter.Allow("slow-provider") {
		t.Errorf("second request should fail")
	}

	// Default-rate keys still fast
	if !limiter.Allow("fast-provider") {
		t.Errorf("other key should pass")
	}
}
