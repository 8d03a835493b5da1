package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitFor(t *testing.T) {
	original := after
	defer func() { after = original }()

	var waited time.Duration
	after = func(d time.Duration) <-chan time.Time {
		waited = d
		fired := make(chan time.Time, 1)
		fired <- time.Time{}
		return fired
	}

	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("expected nil for zero duration, got %v", err)
	}
	if waited != 0 {
		t.Fatalf("expected no wait for zero duration, got %v", waited)
	}

	if err := WaitFor(context.Background(), 5*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if waited != 5*time.Second {
		t.Fatalf("expected wait of 5s, got %v", waited)
	}
}

func TestWaitForCancelled(t *testing.T) {
	original := after
	defer func() { after = original }()

	after = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
