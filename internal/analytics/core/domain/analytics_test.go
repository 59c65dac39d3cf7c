package domain

import (
	"math"
	"testing"
	"time"
)

func TestTrailingDays_FromNeverAfterTo(t *testing.T) {
	today := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		wantFrom time.Time
	}{
		{"one day", 1, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		{"week", 7, time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)},
		{"maximum", MaxWindowDays, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(MaxWindowDays - 1))},
		{"zero", 0, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
		{"just over maximum", MaxWindowDays + 1, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
		{"max int", math.MaxInt, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
		{"half max int64", math.MaxInt64 / 2, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
		{"min int", math.MinInt, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TrailingDays(today, tt.days)
			if r.From.After(r.To) {
				t.Fatalf("from %s is after to %s", r.From, r.To)
			}
			if !r.From.Equal(tt.wantFrom) {
				t.Fatalf("expected from=%s, got %s", tt.wantFrom, r.From)
			}
			if !r.To.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("expected to=2026-10-19, got %s", r.To)
			}
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := TrailingDays(time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC), 3)

	inside := []time.Time{
		time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 19, 23, 59, 59, 0, time.UTC),
	}
	for _, ts := range inside {
		if !r.Contains(ts) {
			t.Fatalf("expected %s inside %s..%s", ts, r.From, r.To)
		}
	}

	outside := []time.Time{
		time.Date(2026, 10, 16, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, ts := range outside {
		if r.Contains(ts) {
			t.Fatalf("expected %s outside %s..%s", ts, r.From, r.To)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(4.23456); got != 4.23 {
		t.Fatalf("expected 4.23, got %v", got)
	}
	if got := Round2(12.346); got != 12.35 {
		t.Fatalf("expected 12.35, got %v", got)
	}
}
