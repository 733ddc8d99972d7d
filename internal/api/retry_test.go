package api

import (
	"context"
	"testing"
	"time"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", cfg.MaxRetries, DefaultMaxRetries)
	}
	if cfg.BaseDelay != 500*time.Millisecond {
		t.Errorf("BaseDelay = %v, want 500ms", cfg.BaseDelay)
	}
	if cfg.MaxDelay != 8*time.Second {
		t.Errorf("MaxDelay = %v, want 8s", cfg.MaxDelay)
	}
}

func TestShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.MaxRetries = 3

	tests := []struct {
		name    string
		attempt int
		status  int
		want    bool
	}{
		{"rate limit", 0, 429, true},
		{"server error", 0, 500, true},
		{"bad gateway", 1, 502, true},
		{"service unavailable", 2, 503, true},
		{"bad request", 0, 400, false},
		{"unauthorized", 0, 401, false},
		{"not found", 0, 404, false},
		{"unprocessable", 0, 422, false},
		{"exhausted", 3, 500, false},
		{"past exhaustion", 4, 429, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.ShouldRetry(tt.attempt, tt.status); got != tt.want {
				t.Errorf("ShouldRetry(%d, %d) = %v, want %v", tt.attempt, tt.status, got, tt.want)
			}
		})
	}
}

func TestDelayGrowsAndCaps(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   8 * time.Second,
		Multiplier: 2.0,
		Jitter:     0, // deterministic
	}

	want := []time.Duration{
		500 * time.Millisecond,
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		8 * time.Second, // capped
	}
	for attempt, expected := range want {
		if got := cfg.Delay(attempt); got != expected {
			t.Errorf("Delay(%d) = %v, want %v", attempt, got, expected)
		}
	}
}

func TestDelayJitterBounds(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  1 * time.Second,
		MaxDelay:   8 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
	}
	for i := 0; i < 100; i++ {
		d := cfg.Delay(0)
		if d < 800*time.Millisecond || d > 1200*time.Millisecond {
			t.Fatalf("jittered delay %v outside [800ms, 1200ms]", d)
		}
	}
}

func TestWaitHonorsContext(t *testing.T) {
	cfg := DefaultRetryConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := cfg.Wait(ctx, time.Minute); err == nil {
		t.Error("expected context error")
	}

	start := time.Now()
	if err := cfg.Wait(context.Background(), 5*time.Millisecond); err != nil {
		t.Errorf("Wait: %v", err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("Wait returned before the delay elapsed")
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		value  string
		want   time.Duration
		wantOK bool
	}{
		{"2", 2 * time.Second, true},
		{"0.5", 500 * time.Millisecond, true},
		{"0", 0, true},
		{"", 0, false},
		{"-1", 0, false},
		{"Wed, 21 Oct 2015 07:28:00 GMT", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRetryAfter(tt.value)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseRetryAfter(%q) = (%v, %v), want (%v, %v)", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}
