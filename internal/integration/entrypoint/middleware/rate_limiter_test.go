package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := rl.allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("attempt %d: expected to be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if allowed, _ := rl.allow(ctx, "10.0.0.2"); !allowed {
			t.Fatalf("attempt %d: expected to be allowed", i+1)
		}
	}

	allowed, err := rl.allow(ctx, "10.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("expected third attempt to be blocked")
	}
}

func TestRateLimiter_WindowExpiryResetsCount(t *testing.T) {
	rl, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := rl.allow(ctx, "10.0.0.3"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if allowed, _ := rl.allow(ctx, "10.0.0.3"); allowed {
		t.Fatal("second attempt should be blocked")
	}

	mr.FastForward(2 * time.Minute)

	if allowed, _ := rl.allow(ctx, "10.0.0.3"); !allowed {
		t.Fatal("attempt after window expiry should be allowed")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := rl.allow(ctx, "10.0.0.4"); !allowed {
		t.Fatal("first key should be allowed")
	}
	if allowed, _ := rl.allow(ctx, "10.0.0.5"); !allowed {
		t.Fatal("second key should not share the first key's count")
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if allowed, _ := rl.allow(ctx, "10.0.0.6"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if err := rl.Reset(ctx, "10.0.0.6"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if allowed, _ := rl.allow(ctx, "10.0.0.6"); !allowed {
		t.Fatal("attempt after reset should be allowed")
	}
}
